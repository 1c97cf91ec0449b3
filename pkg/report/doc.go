// Package report provides JSON import and export for analysis reports.
//
// # Overview
//
// A report is the complete output of one project analysis: the detected
// ecosystem, the parsed manifest, the identified framework, and the
// classified stack. The JSON format is the tool's public interface; CI
// pipelines and downstream tools consume it directly.
//
// # Import and Export
//
// Use [ExportJSON] to write a report to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	err := report.ExportJSON(r, "stack.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Use [ImportJSON] to read a report from a file path, or [ReadJSON] to read
// from any io.Reader. Both validate that the document carries an ecosystem
// detection; a report without one was not produced by a completed analysis.
//
// Export then re-import yields an identical report, so cached reports are
// interchangeable with freshly computed ones.
package report
