package goarg_test

import (
	"fmt"
	"os"

	"github.com/napalu/goarg"
	"github.com/napalu/goarg/types"
)

func Example() {
	parser, err := goarg.NewParserWith(
		goarg.WithStdout(os.Stdout),
		goarg.WithOption(goarg.NewOption("name",
			goarg.WithShort('n'),
			goarg.WithDescription("Who to greet"),
			goarg.SetRequired(true))),
		goarg.WithOption(goarg.NewOption("count",
			goarg.WithType(types.UnsignedInt),
			goarg.WithDefault(1),
			goarg.WithDescription("How many times"))))
	if err != nil {
		fmt.Println(err)
		return
	}

	if res, err := parser.Parse([]string{"/bin/greet", "--nameAda", "--count2", "notes.txt"}); res != goarg.Ok {
		fmt.Println(res, err)
		return
	}

	name, _ := parser.GetString("name")
	count, _ := parser.GetUint("count")
	fmt.Println(name, count, parser.Positionals())
	// Output: Ada 2 [notes.txt]
}

func ExampleParser_PrintHelp() {
	parser, _ := goarg.NewParserWith(
		goarg.WithProgramDescription("Greets people"),
		goarg.WithOption(goarg.NewOption("name",
			goarg.WithShort('n'),
			goarg.WithDescription("Who to greet"))),
		goarg.WithOption(goarg.NewOption("loud",
			goarg.WithType(types.Toggle),
			goarg.WithDescription("Shout"))))

	parser.PrintHelp(os.Stdout)
	// Output:
	// Greets people
	// Usage:  [options]
	//
	// Options:
	//     -n, --name Who to greet
	//         --loud Shout
}
