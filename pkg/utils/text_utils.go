package utils

import (
	"strings"
	"unicode/utf8"
)

// MeasureFunc 返回文本的绘制宽度（像素）
type MeasureFunc func(s string) float64

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - measure: 宽度测量函数（通常由 Painter 按字号提供）
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，按字符强制断行
func WrapText(textStr string, measure MeasureFunc, maxWidth float64) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if measure(textStr) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if measure(testLine) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
		}
		// 单词本身超宽时按字符拆开
		if measure(word) > maxWidth {
			parts := breakWord(word, measure, maxWidth)
			lines = append(lines, parts[:len(parts)-1]...)
			currentLine = parts[len(parts)-1]
		} else {
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// breakWord 按字符拆分超宽单词，至少返回一段
func breakWord(word string, measure MeasureFunc, maxWidth float64) []string {
	var parts []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		char := string(r)
		if current != "" && measure(current+char) > maxWidth {
			parts = append(parts, current)
			current = ""
		}
		current += char
		word = word[size:]
	}
	return append(parts, current)
}
