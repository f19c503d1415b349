package mongostore

import (
	"counterhub/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// documentValidationFailure is the server code for a write rejected by a $jsonSchema validator.
const documentValidationFailure = 121

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func isValidationFailure(err error) bool {
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.HasErrorCode(documentValidationFailure)
	}

	return false
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
