package response

import (
	"time"

	"airvoucher-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
	},
}

// copyView panics on failure: views and responses are fixed types, so an error is a mapping bug.
func copyView(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		panic(errs.Wrap(err, "response mapping failed"))
	}
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}
