package caseconv_test

import (
	"fmt"

	"github.com/mkelsey/caseconv"
)

func Example() {
	for _, input := range []string{
		"hello world",
		"hello_world",
		"helloWorld",
		"hello   world",
		"hello, world!",
	} {
		out, err := caseconv.ToKebabCase(input)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(out)
	}

	// Non-textual input is rejected with the offending type in the message.
	if _, err := caseconv.ToKebabCase(123); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// hello-world
	// hello-world
	// hello-world
	// hello-world
	// hello-world
	// error: invalid input type int (value: 123)
}

func ExampleToDotCase() {
	out, _ := caseconv.ToDotCase("HELLO_WORLD")
	fmt.Println(out)

	out, _ = caseconv.ToDotCase("hello!!!world???")
	fmt.Println(out)

	// Output:
	// hello.world
	// hello.world
}

func ExampleToCamelCase() {
	fmt.Println(caseconv.ToCamelCase("convert-this-string"))
	// Output: convertThisString
}

func ExampleConvert() {
	out, _ := caseconv.Convert("HTTPServer", caseconv.ConventionSnake)
	fmt.Println(out)
	// Output: http_server
}
