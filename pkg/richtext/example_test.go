package richtext_test

import (
	"fmt"

	"github.com/citemill/citemill/pkg/richtext"
)

func Example() {
	n := richtext.Seq(
		richtext.Text("Computing machinery and intelligence. "),
		richtext.Emph(richtext.Text("Mind")),
		richtext.Text(", 59."),
	)

	fmt.Println(n.Plain())
	fmt.Println(richtext.HTML(n))
	fmt.Println(richtext.Markdown(n))
	// Output:
	// Computing machinery and intelligence. Mind, 59.
	// Computing machinery and intelligence. <em>Mind</em>, 59.
	// Computing machinery and intelligence. *Mind*, 59.
}

func ExampleLink() {
	n := richtext.Link("https://doi.org/10.1000/xyz123",
		richtext.Text("https://doi.org/10.1000/xyz123"))

	fmt.Println(richtext.HTML(n))
	fmt.Println(richtext.Markdown(n))
	// Output:
	// <a href="https://doi.org/10.1000/xyz123">https://doi.org/10.1000/xyz123</a>
	// [https://doi.org/10.1000/xyz123](https://doi.org/10.1000/xyz123)
}
