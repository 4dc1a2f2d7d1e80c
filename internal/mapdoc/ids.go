package mapdoc

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// elementID derives a stable DOM/JS identifier so that identical documents
// serialize identically.
func elementID(kind, name string, index int) string {
	u := uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+"\x00"+name+"\x00"+strconv.Itoa(index)))
	return kind + "_" + strings.ReplaceAll(u.String(), "-", "")
}
