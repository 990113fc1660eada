package grpckeyring

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"relaykit.dev/keyring/keyring"
)

// Server exposes a keyring.Store over the Keyring gRPC service.
//
// Private key material never crosses the wire: the service surface is
// derive, public key lookup, and signing. There is deliberately no remote
// Get or Insert.
type Server struct {
	UnimplementedKeyringServer
	Store keyring.Store
}

func (s *Server) AddFromMnemonic(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	addr, err := s.Store.AddFromMnemonic(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(addr.Bytes()), nil
}

func (s *Server) PublicKey(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	addr, err := keyring.AddressFromBytes(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	entry, err := s.Store.Get(addr)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(entry.PublicKey().SerializeCompressed()), nil
}

func (s *Server) Sign(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	b := in.GetValue()
	if len(b) < keyring.AddressLen {
		return nil, status.Error(codes.InvalidArgument, "sign request shorter than an address")
	}
	addr, err := keyring.AddressFromBytes(b[:keyring.AddressLen])
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	sig, err := s.Store.Sign(addr, b[keyring.AddressLen:])
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(sig), nil
}

// mapErr translates the keyring error taxonomy to gRPC status codes.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case keyring.IsKind(err, keyring.KindInvalidKey):
		return status.Error(codes.NotFound, err.Error())
	case keyring.IsKind(err, keyring.KindInvalidMnemonic):
		return status.Error(codes.InvalidArgument, err.Error())
	case keyring.IsKind(err, keyring.KindPrivateKey):
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
