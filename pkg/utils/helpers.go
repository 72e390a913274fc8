package utils

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"

	"gorm.io/datatypes"
)

// CalculateMD5 计算字节切片的MD5十六进制摘要
func CalculateMD5(data []byte) string {
	hasher := md5.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// ConvertToJSON 将任意可序列化的值转换为JSON列，nil和序列化失败都落到null
func ConvertToJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return datatypes.JSON("null")
	}
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(jsonBytes)
}
