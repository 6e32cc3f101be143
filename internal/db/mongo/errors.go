package mongo

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB server error codes the store classifies. Everything else is passed
// through verbatim inside *db.Error.
const (
	codeFailedToParse         = 9
	codeTypeMismatch          = 14
	codeNamespaceNotFound     = 26
	codeInvalidOptions        = 72
	codeIndexOptionsConflict  = 85
	codeIndexKeySpecsConflict = 86
)

// hasServerCode reports whether err carries one of the given server codes.
func hasServerCode(err error, codes ...int32) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		for _, c := range codes {
			if ce.Code == c {
				return true
			}
		}
	}
	var se mongo.ServerError
	if errors.As(err, &se) {
		for _, c := range codes {
			if se.HasErrorCode(int(c)) {
				return true
			}
		}
	}
	return false
}
