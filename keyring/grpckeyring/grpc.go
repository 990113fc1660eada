package grpckeyring

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// KeyringServer is the server API for the Keyring gRPC service.
//
// We intentionally use protobuf well-known wrapper types so this package does
// not require a protoc/codegen toolchain. A Sign request is the fixed
// 20-byte address followed by the message bytes (keyring.AddressLen is a
// protocol constant, so the framing is unambiguous).
//
// Proto definition: keyring.proto.
type KeyringServer interface {
	// AddFromMnemonic derives and stores a key, returning the raw address.
	AddFromMnemonic(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
	// PublicKey returns the compressed public key for a raw address.
	PublicKey(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	// Sign signs the message portion of the request with the addressed key
	// and returns the compact 64-byte signature.
	Sign(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
}

// UnimplementedKeyringServer can be embedded to have forward compatible implementations.
type UnimplementedKeyringServer struct{}

func (UnimplementedKeyringServer) AddFromMnemonic(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method AddFromMnemonic not implemented")
}
func (UnimplementedKeyringServer) PublicKey(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method PublicKey not implemented")
}
func (UnimplementedKeyringServer) Sign(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Sign not implemented")
}

// RegisterKeyringServer registers the Keyring service on a gRPC server.
func RegisterKeyringServer(s grpc.ServiceRegistrar, srv KeyringServer) {
	s.RegisterService(&Keyring_ServiceDesc, srv)
}

// KeyringClient is the client API for the Keyring gRPC service.
type KeyringClient interface {
	AddFromMnemonic(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	PublicKey(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Sign(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type keyringClient struct{ cc grpc.ClientConnInterface }

func NewKeyringClient(cc grpc.ClientConnInterface) KeyringClient { return &keyringClient{cc: cc} }

func (c *keyringClient) AddFromMnemonic(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/relaykit.keyring.v1.Keyring/AddFromMnemonic", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keyringClient) PublicKey(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/relaykit.keyring.v1.Keyring/PublicKey", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keyringClient) Sign(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/relaykit.keyring.v1.Keyring/Sign", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Keyring_AddFromMnemonic_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeyringServer).AddFromMnemonic(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/relaykit.keyring.v1.Keyring/AddFromMnemonic"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeyringServer).AddFromMnemonic(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Keyring_PublicKey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeyringServer).PublicKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/relaykit.keyring.v1.Keyring/PublicKey"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeyringServer).PublicKey(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Keyring_Sign_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeyringServer).Sign(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/relaykit.keyring.v1.Keyring/Sign"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeyringServer).Sign(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Keyring_ServiceDesc is the grpc.ServiceDesc for the Keyring service.
var Keyring_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "relaykit.keyring.v1.Keyring",
	HandlerType: (*KeyringServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddFromMnemonic",
			Handler:    _Keyring_AddFromMnemonic_Handler,
		},
		{
			MethodName: "PublicKey",
			Handler:    _Keyring_PublicKey_Handler,
		},
		{
			MethodName: "Sign",
			Handler:    _Keyring_Sign_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "keyring.proto",
}
