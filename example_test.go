package sha256hmac_test

import (
	"fmt"

	"github.com/Giulio2002/sha256hmac"
)

func ExampleSum256() {
	fmt.Println(sha256hmac.Sum256([]byte("abc")).Hex())
	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}

func ExampleHasher() {
	h := sha256hmac.New()
	h.WriteString("a")
	h.WriteString("bc")
	fmt.Println(h.Finalize().Hex())
	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}

func ExampleMAC() {
	m := sha256hmac.NewMAC([]byte("key"))
	m.WriteString("The quick brown fox ")
	m.WriteString("jumps over the lazy dog")
	tag, err := m.Finalize()
	if err != nil {
		panic(err)
	}
	fmt.Println(tag.Hex())
	// Output: f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8
}
