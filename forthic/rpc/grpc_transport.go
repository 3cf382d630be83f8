// Package rpc implements forthic.Transport over gRPC, for Remote words that
// delegate execution to an external collaborator process.
package rpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// GRPCTransport invokes a fixed gRPC method directly via ClientConn.Invoke,
// bypassing generated stubs: the request and reply are both structpb.Struct,
// which already implements proto.Message, so there is nothing to codegen.
type GRPCTransport struct {
	conn   *grpc.ClientConn
	method string
}

// NewGRPCTransport creates a transport that calls method (a fully-qualified
// gRPC method name, e.g. "/forthic.Runtime/Execute") over conn.
func NewGRPCTransport(conn *grpc.ClientConn, method string) *GRPCTransport {
	return &GRPCTransport{conn: conn, method: method}
}

// Execute sends {word, stack} and expects back a struct with a "results"
// list field, which becomes the values the Remote word pushes in order.
func (t *GRPCTransport) Execute(ctx context.Context, word string, stack []interface{}) ([]interface{}, error) {
	stackValue, err := toListValue(stack)
	if err != nil {
		return nil, fmt.Errorf("encoding stack for remote call: %w", err)
	}

	req := &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"word":  structpb.NewStringValue(word),
			"stack": structpb.NewListValue(stackValue),
		},
	}

	reply := &structpb.Struct{}
	if err := t.conn.Invoke(ctx, t.method, req, reply); err != nil {
		return nil, err
	}

	resultsField, ok := reply.Fields["results"]
	if !ok {
		return nil, fmt.Errorf("remote reply missing results field")
	}
	listVal := resultsField.GetListValue()
	if listVal == nil {
		return nil, fmt.Errorf("remote reply results field is not a list")
	}

	results := make([]interface{}, len(listVal.Values))
	for i, v := range listVal.Values {
		results[i] = v.AsInterface()
	}
	return results, nil
}

// toStructValue converts a Forthic value to a structpb.Value. It extends
// structpb.NewValue with a case for time.Time (encoded as RFC3339), which
// structpb has no native representation for.
//
// Numeric caveat: structpb represents all numbers as float64, so int64
// values beyond 2^53 lose precision crossing this transport.
func toStructValue(v interface{}) (*structpb.Value, error) {
	switch val := v.(type) {
	case nil:
		return structpb.NewNullValue(), nil
	case time.Time:
		return structpb.NewStringValue(val.Format(time.RFC3339)), nil
	case []interface{}:
		list, err := toListValue(val)
		if err != nil {
			return nil, err
		}
		return structpb.NewListValue(list), nil
	case map[string]interface{}:
		fields := make(map[string]*structpb.Value, len(val))
		for k, fv := range val {
			sv, err := toStructValue(fv)
			if err != nil {
				return nil, err
			}
			fields[k] = sv
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	default:
		return structpb.NewValue(v)
	}
}

func toListValue(items []interface{}) (*structpb.ListValue, error) {
	values := make([]*structpb.Value, len(items))
	for i, item := range items {
		v, err := toStructValue(item)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &structpb.ListValue{Values: values}, nil
}
