package contest

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func newID() (string, error) {
	return gonanoid.Generate(idAlphabet, 12)
}
