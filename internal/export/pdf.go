package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// ErrEncoding 摘要包含 Latin-1 以外的字符，PDF 内置字体无法渲染
var ErrEncoding = errors.New("摘要包含 PDF 字体不支持的字符")

const (
	pdfFont       = "Arial"
	pdfFontSize   = 12
	pdfLineHeight = 10
)

// RenderPDF 生成 A4 纵向 PDF，正文为自动换行的多行文本块
func RenderPDF(summary string) ([]byte, error) {
	text, err := charmap.ISO8859_1.NewEncoder().String(summary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont(pdfFont, "", pdfFontSize)
	pdf.MultiCell(0, pdfLineHeight, text, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("生成 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}
