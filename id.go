package sweet

import (
	"encoding/binary"
	"hash/fnv"
)

// ID identifies a toolkit item, such as the frame opened by ChildFrame.
// IDs are stable across frames for the same label.
type ID uint32

// HashID generates a stable ID from a string label.
func HashID(label string) ID {
	h := fnv.New32a()
	h.Write([]byte(label))
	return ID(h.Sum32())
}

// HashIDInt generates an ID for an item in an array or slice,
// scoped under the label of its parent.
func HashIDInt(parent string, n int) ID {
	h := fnv.New32a()
	h.Write([]byte(parent))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])
	return ID(h.Sum32())
}
