package service

import "errors"

// asDeliveryError is a small indirection so the service package does not
// need the project error facade.
func asDeliveryError(err error, target **DeliveryError) bool {
	return errors.As(err, target)
}

// AsTranslationError extracts a classified translation failure from err.
func AsTranslationError(err error) (*TranslationError, bool) {
	var te *TranslationError
	if errors.As(err, &te) {
		return te, true
	}

	return nil, false
}
