// Package hashing defines the Hashable contract and a handful of HashFuncs
// that turn a Hashable into a hex digest.
package hashing

import (
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
//
// A type that carries no data may write nothing at all; its digest is then
// the digest of empty input.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// All lists every HashFunc in this package, keyed by name.
var All = map[string]HashFunc{ //nolint:gochecknoglobals
	"sha256":   Sha256,
	"sha512":   Sha512,
	"sha1":     Sha1,
	"md5":      Md5,
	"xxhash64": XXHash64,
	"xxh3":     XXH3,
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Sha512 returns the hex-encoded SHA512 digest of the Hashable.
func Sha512(hashable Hashable) (string, error) {
	return digest(sha512.New(), hashable)
}

// Sha1 returns the hex-encoded SHA1 digest of the Hashable.
// Not for anything security sensitive.
func Sha1(hashable Hashable) (string, error) {
	return digest(sha1.New(), hashable) //nolint:gosec
}

// Md5 returns the hex-encoded MD5 digest of the Hashable.
// Not for anything security sensitive.
func Md5(hashable Hashable) (string, error) {
	return digest(md5.New(), hashable) //nolint:gosec
}

// XXHash64 returns the hex-encoded 64-bit xxHash (seed 0) of the Hashable.
// Much faster than the cryptographic functions, fine for in-memory keys.
func XXHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

// XXH3 returns the hex-encoded 64-bit XXH3 digest of the Hashable.
func XXH3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

func (b HashableBytes) Equals(other HashableBytes) bool {
	return string(b) == string(other)
}
