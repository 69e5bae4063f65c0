package rpc

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// FunctionSelector computes the 4-byte function selector from a signature
// e.g., "balanceOf(address)" -> 0x70a08231
func FunctionSelector(signature string) []byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(signature))
	return hasher.Sum(nil)[:4]
}

// EncodeAddress pads an Ethereum address to 32 bytes (left-padded with zeros)
func EncodeAddress(addr string) ([]byte, error) {
	addr = strings.TrimPrefix(strings.ToLower(addr), "0x")
	if len(addr) != 2*AddressLength {
		return nil, fmt.Errorf("invalid address length: expected 40 hex chars, got %d", len(addr))
	}

	addrBytes, err := hex.DecodeString(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address hex: %w", err)
	}

	padded := make([]byte, 32)
	copy(padded[12:], addrBytes)
	return padded, nil
}

// EncodeCalldata builds call data for a function with static arguments only.
// Supported types are address, bool, bytes32 and uint<N>; each value is a
// string as it would be typed on a command line (uints in decimal or 0x hex).
//
//	EncodeCalldata("balanceOf(address)", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
func EncodeCalldata(signature string, args ...string) (string, error) {
	types, err := signatureTypes(signature)
	if err != nil {
		return "", err
	}
	if len(types) != len(args) {
		return "", fmt.Errorf("%s takes %d arguments, got %d", signature, len(types), len(args))
	}

	calldata := FunctionSelector(signature)
	for i, typ := range types {
		word, err := encodeWord(typ, args[i])
		if err != nil {
			return "", fmt.Errorf("argument %d (%s): %w", i, typ, err)
		}
		calldata = append(calldata, word...)
	}
	return "0x" + hex.EncodeToString(calldata), nil
}

func signatureTypes(signature string) ([]string, error) {
	open := strings.IndexByte(signature, '(')
	if open <= 0 || !strings.HasSuffix(signature, ")") {
		return nil, fmt.Errorf("invalid function signature %q", signature)
	}
	inner := signature[open+1 : len(signature)-1]
	if inner == "" {
		return nil, nil
	}
	return strings.Split(inner, ","), nil
}

func encodeWord(typ, arg string) ([]byte, error) {
	switch {
	case typ == "address":
		return EncodeAddress(arg)
	case typ == "bool":
		word := make([]byte, 32)
		switch arg {
		case "true":
			word[31] = 1
		case "false":
		default:
			return nil, fmt.Errorf("invalid bool %q", arg)
		}
		return word, nil
	case typ == "bytes32":
		b, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
		if err != nil || len(b) != 32 {
			return nil, fmt.Errorf("invalid bytes32 %q", arg)
		}
		return b, nil
	case strings.HasPrefix(typ, "uint"):
		n, ok := new(big.Int), false
		if strings.HasPrefix(arg, "0x") {
			_, ok = n.SetString(arg[2:], 16)
		} else {
			_, ok = n.SetString(arg, 10)
		}
		if !ok || n.Sign() < 0 || n.BitLen() > 256 {
			return nil, fmt.Errorf("invalid %s %q", typ, arg)
		}
		return n.FillBytes(make([]byte, 32)), nil
	default:
		return nil, fmt.Errorf("unsupported type %q", typ)
	}
}
