package grpckeyring

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"relaykit.dev/keyring/keyring"
)

// mapRPC translates gRPC status codes back into the keyring error taxonomy
// so client callers can branch on Kind exactly as local callers do.
func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return &keyring.Error{Kind: keyring.KindInvalidKey, Message: st.Message(), Cause: err}
	case codes.InvalidArgument:
		return &keyring.Error{Kind: keyring.KindInvalidMnemonic, Message: st.Message(), Cause: err}
	case codes.Internal:
		return &keyring.Error{Kind: keyring.KindPrivateKey, Message: st.Message(), Cause: err}
	default:
		return err
	}
}
