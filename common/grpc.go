package common

import (
	"net"
	"path/filepath"

	"github.com/evilsocket/islazy/fs"
	"github.com/evilsocket/islazy/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

const (
	// CertFile is the name of the TLS certificate in the credentials folder.
	CertFile = "cert.pem"
	// KeyFile is the name of the TLS key in the credentials folder.
	KeyFile = "key.pem"
)

// HasCredentials returns true if credsPath contains both the TLS
// certificate and key.
func HasCredentials(credsPath string) bool {
	return fs.Exists(filepath.Join(credsPath, CertFile)) && fs.Exists(filepath.Join(credsPath, KeyFile))
}

// NewGrpcServer creates a grpc server, using TLS if the credentials are
// found in credsPath.
func NewGrpcServer(credsPath string, maxMsgSize int) (*grpc.Server, error) {
	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(maxMsgSize),
		grpc.MaxSendMsgSize(maxMsgSize),
	}

	if HasCredentials(credsPath) {
		creds, err := credentials.NewServerTLSFromFile(
			filepath.Join(credsPath, CertFile),
			filepath.Join(credsPath, KeyFile))
		if err != nil {
			return nil, err
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		log.Warning("no credentials found in %s, running without TLS", credsPath)
	}

	return grpc.NewServer(opts...), nil
}

// Listen creates the grpc server and its TCP listener.
func Listen(credsPath, address string, maxMsgSize int) (*grpc.Server, net.Listener, error) {
	server, err := NewGrpcServer(credsPath, maxMsgSize)
	if err != nil {
		return nil, nil, err
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, nil, err
	}

	return server, listener, nil
}

// Dial connects to a fastmath server, certFile is the server certificate
// to use for TLS or empty for an insecure connection.
func Dial(address, certFile string, maxMsgSize int) (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMsgSize),
			grpc.MaxCallSendMsgSize(maxMsgSize)),
	}

	if certFile != "" {
		creds, err := credentials.NewClientTLSFromFile(certFile, "")
		if err != nil {
			return nil, err
		}
		opts = append(opts, grpc.WithTransportCredentials(creds))
	} else {
		opts = append(opts, grpc.WithInsecure())
	}

	return grpc.Dial(address, opts...)
}
