package model

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Clone returns a deep copy of src.
func Clone[T any](src *T) *T {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprint("clone: ", err))
	}
	return dst
}
