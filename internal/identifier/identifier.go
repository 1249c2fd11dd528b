// Package identifier converts between the store's native 12-byte object
// identifier and its external 24-character hexadecimal string form.
package identifier

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToExternal renders the 24-character lowercase hex form of an identifier.
func ToExternal(id primitive.ObjectID) string {
	return id.Hex()
}

// ToNative parses an external hex string into a native identifier.
// Anything that is not exactly 24 hex characters is rejected.
func ToNative(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid identifier %q: %w", s, err)
	}
	return id, nil
}

// IsValid reports whether s is a syntactically valid external identifier.
func IsValid(s string) bool {
	_, err := ToNative(s)
	return err == nil
}
