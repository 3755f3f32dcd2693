// Package constraints provides type constraints shared by generic parsers.
package constraints

// Byteseq is the input accepted by parsers: a string or a byte slice.
type Byteseq interface {
	~string | ~[]byte
}
