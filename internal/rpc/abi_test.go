package rpc

import (
	"bytes"
	"strings"
	"testing"
)

func TestFunctionSelector(t *testing.T) {
	tests := []struct {
		signature string
		want      []byte
	}{
		{"balanceOf(address)", []byte{0x70, 0xa0, 0x82, 0x31}},
		{"transfer(address,uint256)", []byte{0xa9, 0x05, 0x9c, 0xbb}},
	}

	for _, tt := range tests {
		t.Run(tt.signature, func(t *testing.T) {
			if got := FunctionSelector(tt.signature); !bytes.Equal(got, tt.want) {
				t.Errorf("selector: got %x, want %x", got, tt.want)
			}
		})
	}
}

func TestEncodeAddress(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"valid with 0x", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", false},
		{"valid without 0x", "d8dA6BF26964aF9D7eEd9e03E53415D37aA96045", false},
		{"too short", "0xd8dA6BF269", true},
		{"invalid hex", "0xZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EncodeAddress(tt.addr)
			if (err != nil) != tt.wantErr {
				t.Errorf("EncodeAddress() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && (len(result) != 32 || result[12] != 0xd8 || result[0] != 0) {
				t.Errorf("EncodeAddress() = %x, want address right-aligned in 32 bytes", result)
			}
		})
	}
}

func TestEncodeCalldata(t *testing.T) {
	calldata, err := EncodeCalldata("balanceOf(address)", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "0x70a08231000000000000000000000000d8da6bf26964af9d7eed9e03e53415d37aa96045"
	if calldata != want {
		t.Errorf("calldata = %s, want %s", calldata, want)
	}

	calldata, err = EncodeCalldata("transfer(address,uint256)", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", "0x64")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(calldata, strings.Repeat("0", 62)+"64") || len(calldata) != 2+8+128 {
		t.Errorf("calldata = %s", calldata)
	}

	if _, err := NewBuilder(nil).SendRawTransaction(calldata); err != nil {
		t.Errorf("encoded calldata rejected as hex data: %v", err)
	}
}

func TestEncodeCalldataErrors(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		args      []string
	}{
		{"no parens", "balanceOf", nil},
		{"arity", "balanceOf(address)", nil},
		{"bad bool", "setFlag(bool)", []string{"yes"}},
		{"negative uint", "mint(uint256)", []string{"-1"}},
		{"short bytes32", "get(bytes32)", []string{"0x01"}},
		{"dynamic type", "setName(string)", []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EncodeCalldata(tt.signature, tt.args...); err == nil {
				t.Errorf("EncodeCalldata(%q) succeeded, want error", tt.signature)
			}
		})
	}
}
