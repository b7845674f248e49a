package gateway

import "errors"

// ErrInvalidCredentials means the subject's own credentials were rejected.
// It is distinct from sap.KindDenied, which means SAP rejected the portal's
// service account.
var ErrInvalidCredentials = errors.New("invalid credentials")
