package report

// Format selects the report output format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatXLSX     Format = "xlsx"
)

// AllFormats returns the supported report formats.
func AllFormats() []Format {
	return []Format{FormatMarkdown, FormatHTML, FormatXLSX}
}

func (f Format) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatHTML, FormatXLSX:
		return true
	}
	return false
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatXLSX:
		return ".xlsx"
	}
	return ""
}
