package encode_utils

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	EncodingUTF8     = "UTF-8"
	EncodingUTF8BOM  = "UTF-8-BOM"
	EncodingGBK      = "GBK"
	EncodingGB18030  = "GB18030"
	EncodingHZGB2312 = "HZ-GB2312"
)

// ErrUnknownEncoding 不支持的编码
var ErrUnknownEncoding = errors.New("unknown encoding")

// 支持的编码 按名称查找 名称不区分大小写
var encodings = map[string]encoding.Encoding{
	EncodingUTF8:     unicode.UTF8,
	EncodingUTF8BOM:  unicode.UTF8BOM,
	EncodingGBK:      simplifiedchinese.GBK,
	EncodingGB18030:  simplifiedchinese.GB18030,
	EncodingHZGB2312: simplifiedchinese.HZGB2312,
}

// Supported 支持的编码名称
func Supported() []string {
	return []string{EncodingUTF8, EncodingUTF8BOM, EncodingGBK, EncodingGB18030, EncodingHZGB2312}
}

// lookup 查找编码
func lookup(encodingStr string) (encoding.Encoding, error) {
	enc, ok := encodings[strings.ToUpper(strings.TrimSpace(encodingStr))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q, supported %v", encodingStr, Supported())
	}
	return enc, nil
}

// NewEncoder 创建编码器 不支持时返回 nil
func NewEncoder(encodingStr string) *encoding.Encoder {
	enc, err := lookup(encodingStr)
	if err != nil {
		return nil
	}
	return enc.NewEncoder()
}

// NewDecoder 创建解码器 不支持时返回 nil
func NewDecoder(encodingStr string) *encoding.Decoder {
	enc, err := lookup(encodingStr)
	if err != nil {
		return nil
	}
	return enc.NewDecoder()
}

// NewWriter 把 UTF-8 文本转为目标编码后写入 w
// 目标编码无法表示的字符替换为替换符 不中断写入
// 调用方需要 Close 以输出编码的收尾字节(如 HZ-GB2312 的 ~}) Close 不会关闭 w
// UTF-8 直接写入 w
func NewWriter(w io.Writer, encodingStr string) (io.WriteCloser, error) {
	enc, err := lookup(encodingStr)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return nopCloser{Writer: w}, nil
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder())), nil
}

// nopCloser Close 为空操作
type nopCloser struct {
	io.Writer
}

// Close 空操作
func (nopCloser) Close() error {
	return nil
}
