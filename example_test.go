package stegoqr_test

import (
	"fmt"

	stegoqr "github.com/yyyoichi/stegoqr"
)

func Example_stegoqr() {
	// Generate a QR code for the public URL and hide a token in it
	code, _, err := stegoqr.Encode("https://example.com/path/to/page", "SECRET")
	if err != nil {
		fmt.Printf("Error encoding: %v\n", err)
		return
	}

	// Any reader decodes the public URL; recovering the token needs
	// the module values and the URL
	result, err := stegoqr.DecodeMatrix(code.Modules(), "https://example.com/path/to/page")
	if err != nil {
		fmt.Printf("Error decoding: %v\n", err)
		return
	}

	fmt.Println(result.Secondary)

	// Output:
	// SECRET
}
