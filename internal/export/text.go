package export

// RenderText 摘要的 UTF-8 纯文本
func RenderText(summary string) []byte {
	return []byte(summary)
}
