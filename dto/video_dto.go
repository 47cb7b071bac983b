package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Int はJSONの数値と数値文字列("5")の両方を受け付ける。
// フォームとクエリ文字列ではginが strconv で変換する。
type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*i = Int(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*i = Int(n)
	return nil
}

// ポインタにすることで0や空文字も「指定あり」として扱う
type CreateVideoInput struct {
	Name  *string `json:"name" form:"name" binding:"required"`
	Views *Int    `json:"views" form:"views" binding:"required"`
	Likes *Int    `json:"likes" form:"likes" binding:"required"`
}

type UpdateVideoInput struct {
	Name  *string `json:"name" form:"name"`
	Views *Int    `json:"views" form:"views"`
	Likes *Int    `json:"likes" form:"likes"`
}
