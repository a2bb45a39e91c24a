package regexlite_test

import (
	"fmt"
	"strings"

	"github.com/twinfer/regexlite"
)

func ExampleIsMatch() {
	fmt.Println(regexlite.IsMatch("c*a*b", "aab"))
	fmt.Println(regexlite.IsMatch("a", "ba"))
	fmt.Println(regexlite.IsMatch("..", "🔥a"))
	fmt.Println(regexlite.IsMatch("a**", ""))
	// Output:
	// true
	// false
	// true
	// false
}

func ExampleIsMatchFold() {
	fmt.Println(regexlite.IsMatchFold("café.*", "CAFÉ CRÈME"))
	// Output: true
}

func ExampleIsMatchReader() {
	ok, err := regexlite.IsMatchReader("log: .*", strings.NewReader("log: started"))
	fmt.Println(ok, err)
	// Output: true <nil>
}

func ExampleValidate() {
	fmt.Println(regexlite.Validate("a**"))
	// Output: syntax error in pattern: '*' at offset 2 follows another '*'
}
