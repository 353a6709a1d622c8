// Package client provides commands that call the BrainMon gRPC service
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/brainmon-api/internal/handlers/brainmon/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the BrainMon API",
	Long:  `Client commands let you explore biomes, battle and manage your monsters through real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(exploreCmd)
	ClientCmd.AddCommand(encounterCmd)
	ClientCmd.AddCommand(monstersCmd)
	ClientCmd.AddCommand(statsCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createBrainmonClient creates a service client and its cleanup func
func createBrainmonClient() (*v1alpha1.Client, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// call runs one unary request with the configured timeout
func call(method string, fields map[string]any) (*structpb.Struct, error) {
	client, cleanup, err := createBrainmonClient()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", method, err)
	}

	return resp, nil
}

// watch streams a method until the server closes it or ctx is done
func watch(ctx context.Context, method string, fields map[string]any, handle func(*structpb.Struct)) error {
	client, cleanup, err := createBrainmonClient()
	if err != nil {
		return err
	}
	defer cleanup()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	stream, err := client.Watch(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	for {
		msg, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%s stream ended: %w", method, err)
		}
		handle(msg)
	}
}

func str(msg *structpb.Struct, key string) string {
	return msg.GetFields()[key].GetStringValue()
}

func num(msg *structpb.Struct, key string) int64 {
	return int64(msg.GetFields()[key].GetNumberValue())
}

func flag(msg *structpb.Struct, key string) bool {
	return msg.GetFields()[key].GetBoolValue()
}

func list(msg *structpb.Struct, key string) []*structpb.Struct {
	values := msg.GetFields()[key].GetListValue().GetValues()
	out := make([]*structpb.Struct, 0, len(values))
	for _, v := range values {
		if s := v.GetStructValue(); s != nil {
			out = append(out, s)
		}
	}
	return out
}

func printJSON(msg *structpb.Struct) {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	if err != nil {
		fmt.Printf("%v\n", msg.AsMap())
		return
	}
	fmt.Println(string(out))
}
