package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"seprim/internal/domain"
)

// multihashCode maps an algorithm to its multicodec hash code.
func multihashCode(alg domain.HashAlgorithm) (uint64, error) {
	switch alg {
	case domain.SHA1:
		return multihash.SHA1, nil
	case domain.SHA224:
		return multihash.SHA2_224, nil
	case domain.SHA256:
		return multihash.SHA2_256, nil
	case domain.SHA384:
		return multihash.SHA2_384, nil
	case domain.SHA512:
		return multihash.SHA2_512, nil
	}
	return 0, fmt.Errorf("no multihash code for %s", alg)
}

// encodeDigest renders digest as hex, base64, a hex multihash or a CIDv1
// over raw bytes.
func encodeDigest(alg domain.HashAlgorithm, digest []byte, encoding string) (string, error) {
	switch encoding {
	case "", "hex":
		return upperHex(digest), nil
	case "base64":
		return base64.StdEncoding.EncodeToString(digest), nil
	case "multihash", "cid":
		code, err := multihashCode(alg)
		if err != nil {
			return "", err
		}
		mh, err := multihash.Encode(digest, code)
		if err != nil {
			return "", err
		}
		if encoding == "multihash" {
			return multihash.Multihash(mh).HexString(), nil
		}
		return cid.NewCidV1(cid.Raw, mh).String(), nil
	}
	return "", fmt.Errorf("unknown encoding %q: want hex, base64, multihash or cid", encoding)
}
