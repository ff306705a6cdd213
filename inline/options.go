package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/liberta-cli/liberta/source"
	"github.com/liberta-cli/liberta/util"
	"github.com/samber/mo"
)

// ItemPicker narrows a result list down to a single item, or nil for no match.
type ItemPicker func([]*source.VideoSummary) *source.VideoSummary

type Options struct {
	Out              io.Writer
	Source           source.Source
	Query            string
	Json             bool
	ItemPicker       mo.Option[ItemPicker]
	IncludeDetails   bool
	IncludeDownloads bool
}

// ParseItemPicker parses a picker description: first, last, exact or index.
func ParseItemPicker(kind, value string) (ItemPicker, error) {
	switch kind {
	case "first":
		return func(items []*source.VideoSummary) *source.VideoSummary {
			if len(items) == 0 {
				return nil
			}
			return items[0]
		}, nil
	case "last":
		return func(items []*source.VideoSummary) *source.VideoSummary {
			if len(items) == 0 {
				return nil
			}
			return items[len(items)-1]
		}, nil
	case "exact":
		return func(items []*source.VideoSummary) *source.VideoSummary {
			for _, item := range items {
				if item.Title == value {
					return item
				}
			}
			return nil
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(items []*source.VideoSummary) *source.VideoSummary {
			if len(items) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(items)-1))
			return items[i]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}
