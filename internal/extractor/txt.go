package extractor

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// extractTXT 纯文本直通解码
// 容忍UTF-8 BOM、UTF-16（两种字节序）以及Latin-1系编码的历史文档
func extractTXT(data []byte) (string, error) {
	// UTF-8 BOM
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return string(data[3:]), nil
	}

	// UTF-16 LE BOM
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, data)
		if err == nil {
			return string(decoded), nil
		}
	}

	// UTF-16 BE BOM
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, data)
		if err == nil {
			return string(decoded), nil
		}
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	// 西语简历常见的Windows-1252/Latin-1遗留编码
	decoder := charmap.Windows1252.NewDecoder()
	if decoded, _, err := transform.Bytes(decoder, data); err == nil {
		return string(decoded), nil
	}

	return string(data), nil
}
