package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// mapTo copies same-named fields from a query view into a response type.
// A failure means the two types drifted apart, so it panics.
func mapTo[T any](src any) T {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("response mapping %T: %v", src, err))
	}
	return dst
}

type PageResponse[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"nextCursor,omitempty"`
}
