package payslip

import (
	"bytes"
	"fmt"
	"strings"
)

// renderPayslipPDF lays out a payslip as a minimal single-page PDF.
// The document is assembled by hand to keep the binary free of a
// rendering dependency for what is a fixed dozen lines of text.
func renderPayslipPDF(resp PayslipResponse, workerName string) []byte {
	lines := []string{
		"KAIAWORKS PNG - PAYSLIP",
		"",
		fmt.Sprintf("Worker: %s", workerName),
		fmt.Sprintf("Pay period: %s to %s", resp.PeriodStart, resp.PeriodEnd),
		fmt.Sprintf("Status: %s", resp.Status),
		"",
		fmt.Sprintf("Total hours: %s", resp.TotalHours.StringFixed(2)),
		fmt.Sprintf("Hourly rate: K %s", resp.HourlyRate.StringFixed(2)),
		fmt.Sprintf("Gross pay:   K %s", resp.GrossPay.StringFixed(2)),
		fmt.Sprintf("Deductions:  K %s", resp.Deductions.StringFixed(2)),
		fmt.Sprintf("Net pay:     K %s", resp.NetPay.StringFixed(2)),
	}
	if resp.Notes != nil && *resp.Notes != "" {
		lines = append(lines, "", fmt.Sprintf("Notes: %s", *resp.Notes))
	}
	return buildSinglePagePDF(lines)
}

func buildSinglePagePDF(lines []string) []byte {
	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 790 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes()
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
