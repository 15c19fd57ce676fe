package secret

import (
	"fmt"
	"hash/crc32"

	"github.com/vtgate-go/vtgate-go-sdk/internal/xstring"
)

const minTokenLength = 16

// Token masks bearer token for logs. Checksum allows to compare tokens
// without printing them.
func Token(token string) string {
	buffer := xstring.Buffer()
	defer buffer.Free()

	if len(token) > minTokenLength {
		buffer.WriteString(token[:4])
		buffer.WriteString("****")
		buffer.WriteString(token[len(token)-4:])
	} else {
		buffer.WriteString("****")
	}
	fmt.Fprintf(buffer, "(CRC-32c: %08X)", crc32.Checksum([]byte(token), crc32.MakeTable(crc32.Castagnoli)))

	return buffer.String()
}
