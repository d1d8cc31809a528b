// Package errors provides structured error handling with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Service errors
	CodeServiceEmptyTitle       Code = "SERVICE_EMPTY_TITLE"
	CodeServiceEmptyRequesterID Code = "SERVICE_EMPTY_REQUESTER_ID"
	CodeServiceInvalidStatus    Code = "SERVICE_INVALID_STATUS"
	CodeServiceNotFound         Code = "SERVICE_NOT_FOUND"

	// Quote errors
	CodeQuoteEmptyServiceID  Code = "QUOTE_EMPTY_SERVICE_ID"
	CodeQuoteEmptyProviderID Code = "QUOTE_EMPTY_PROVIDER_ID"
	CodeQuoteInvalidTotal    Code = "QUOTE_INVALID_TOTAL"
	CodeQuoteInvalidDuration Code = "QUOTE_INVALID_DURATION"
	CodeQuoteNotFound        Code = "QUOTE_NOT_FOUND"
	CodeQuoteDuplicate       Code = "QUOTE_DUPLICATE"
	CodeQuoteServiceMismatch Code = "QUOTE_SERVICE_MISMATCH"

	// Supply errors
	CodeSupplyEmptyName       Code = "SUPPLY_EMPTY_NAME"
	CodeSupplyEmptyProviderID Code = "SUPPLY_EMPTY_PROVIDER_ID"
	CodeSupplyInvalidPrice    Code = "SUPPLY_INVALID_PRICE"
	CodeSupplyInvalidStock    Code = "SUPPLY_INVALID_STOCK"
	CodeSupplyNotFound        Code = "SUPPLY_NOT_FOUND"

	// Supply offer errors
	CodeOfferEmptyName       Code = "OFFER_EMPTY_NAME"
	CodeOfferEmptyProviderID Code = "OFFER_EMPTY_PROVIDER_ID"
	CodeOfferInvalidTotal    Code = "OFFER_INVALID_TOTAL"
	CodeOfferEmptyItems      Code = "OFFER_EMPTY_ITEMS"
	CodeOfferNotFound        Code = "OFFER_NOT_FOUND"

	// User errors
	CodeUserEmptyName    Code = "USER_EMPTY_NAME"
	CodeUserInvalidRole  Code = "USER_INVALID_ROLE"
	CodeUserNotFound     Code = "USER_NOT_FOUND"
	CodeUserNotLoggedIn  Code = "USER_NOT_LOGGED_IN"
	CodeUserRoleMismatch Code = "USER_ROLE_MISMATCH"

	// Fixture errors
	CodeFixtureDecode    Code = "FIXTURE_DECODE"
	CodeFixtureDangling  Code = "FIXTURE_DANGLING_REFERENCE"
	CodeFixtureDuplicate Code = "FIXTURE_DUPLICATE_ID"
)
