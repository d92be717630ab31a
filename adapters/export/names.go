package export

import "strings"

const defaultSource = "data.csv"

func sourceName(source string) string {
	if source == "" {
		return defaultSource
	}
	return source
}

// ProcessedName names the csv download: processed_<source>
func ProcessedName(source string) string {
	return "processed_" + sourceName(source)
}

// ProcessedJSONName names the json download, swapping the first .csv for .json
func ProcessedJSONName(source string) string {
	return "processed_" + strings.Replace(sourceName(source), ".csv", ".json", 1)
}

// ReportName names a report download with the given extension, e.g. ".txt"
func ReportName(source, ext string) string {
	return "analysis_report_" + strings.Replace(sourceName(source), ".csv", ext, 1)
}

// WorkbookName names the xlsx download
func WorkbookName(source string) string {
	return "processed_" + strings.Replace(sourceName(source), ".csv", ".xlsx", 1)
}
