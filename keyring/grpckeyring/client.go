package grpckeyring

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"relaykit.dev/keyring/keyring"
)

// Client talks to a Keyring gRPC service.
//
// It is not a keyring.Store: Get and Insert would have to move private key
// material across the wire, which the service refuses to do.
type Client struct {
	cc     *grpc.ClientConn
	client KeyringClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewKeyringClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// AddFromMnemonic derives and stores a key on the remote keyring and
// returns its address.
func (c *Client) AddFromMnemonic(mnemonic string) (keyring.Address, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.AddFromMnemonic(ctx, wrapperspb.String(mnemonic))
	if err != nil {
		return keyring.Address{}, mapRPC(err)
	}
	return keyring.AddressFromBytes(reply.GetValue())
}

// PublicKey returns the compressed public key stored under addr.
func (c *Client) PublicKey(addr keyring.Address) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.PublicKey(ctx, wrapperspb.Bytes(addr.Bytes()))
	if err != nil {
		return nil, mapRPC(err)
	}
	return reply.GetValue(), nil
}

// Sign signs msg with the key stored under addr on the remote keyring and
// returns the compact 64-byte signature.
func (c *Client) Sign(addr keyring.Address, msg []byte) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	req := make([]byte, 0, keyring.AddressLen+len(msg))
	req = append(req, addr.Bytes()...)
	req = append(req, msg...)

	reply, err := c.client.Sign(ctx, wrapperspb.Bytes(req))
	if err != nil {
		return nil, mapRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
