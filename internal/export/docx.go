package export

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFontName  = "Times New Roman"
	docxFontSize  = 13
	docxTitleSize = 16
)

// WriteDOCX 生成 Word 文档：加粗标题 + 摘要正文
func WriteDOCX(path, title, summary string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	if title != "" {
		addRun(doc.AddParagraph(""), title, true, docxTitleSize)
		doc.AddParagraph("")
	}
	addRun(doc.AddParagraph(""), summary, false, docxFontSize)

	return doc.SaveTo(path)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(docxFontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
