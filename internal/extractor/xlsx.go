package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// extractXLSX 提取电子表格中所有非空单元格的文本
// 遍历顺序固定：表 -> 行 -> 列，值之间用单个空格连接
func extractXLSX(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("解析XLSX失败: %w", err)
	}
	defer f.Close()

	var cells []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			// 单个表读取失败时跳过，保证其余表仍可提取
			continue
		}
		for _, row := range rows {
			for _, cell := range row {
				if cell != "" {
					cells = append(cells, cell)
				}
			}
		}
	}

	return strings.Join(cells, " "), nil
}
