package base58_test

import (
	"errors"
	"fmt"

	"github.com/jht5945/base58/base58"
)

func ExampleEncode() {
	fmt.Println(base58.Encode([]byte("Hello World!")))
	fmt.Println(base58.Encode([]byte{0x00, 0x01}))
	// Output:
	// 2NEpo7TZRRrLZSi2U
	// 12
}

func ExampleDecode() {
	data, err := base58.Decode("2NEpo7TZRRrLZSi2U")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(data))
	// Output: Hello World!
}

func ExampleInvalidCharacterError() {
	_, err := base58.Decode("0OIl")
	var ice *base58.InvalidCharacterError
	if errors.As(err, &ice) {
		fmt.Println(ice.Position, string(ice.Char))
	}
	fmt.Println(err)
	// Output:
	// 0 0
	// invalid base58 character '0' at position 0
}
