package catalog

// KnownLanguages is the built-in language table with github-style display colors
// each extension may be claimed by a single language, enforced by New
var KnownLanguages = []Language{
	{Name: "Go", Extensions: []string{"go"}, Color: "#00ADD8"},
	{Name: "TypeScript", Extensions: []string{"ts", "tsx", "mts", "cts"}, Color: "#3178C6"},
	{Name: "JavaScript", Extensions: []string{"js", "jsx", "mjs", "cjs"}, Color: "#F7DF1E"},
	{Name: "Python", Extensions: []string{"py", "pyi", "pyw"}, Color: "#3776AB"},
	{Name: "Rust", Extensions: []string{"rs"}, Color: "#DEA584"},
	{Name: "Java", Extensions: []string{"java"}, Color: "#B07219"},
	{Name: "Kotlin", Extensions: []string{"kt", "kts"}, Color: "#A97BFF"},
	{Name: "Swift", Extensions: []string{"swift"}, Color: "#F05138"},
	{Name: "C", Extensions: []string{"c", "h"}, Color: "#555555"},
	{Name: "C++", Extensions: []string{"cpp", "cc", "cxx", "hpp", "hh", "hxx"}, Color: "#F34B7D"},
	{Name: "C#", Extensions: []string{"cs", "csx"}, Color: "#178600"},
	{Name: "Ruby", Extensions: []string{"rb", "rake", "gemspec"}, Color: "#701516"},
	{Name: "PHP", Extensions: []string{"php", "phtml"}, Color: "#4F5D95"},
	{Name: "Scala", Extensions: []string{"scala", "sc"}, Color: "#C22D40"},
	{Name: "Elixir", Extensions: []string{"ex", "exs"}, Color: "#6E4A7E"},
	{Name: "Erlang", Extensions: []string{"erl", "hrl"}, Color: "#B83998"},
	{Name: "Haskell", Extensions: []string{"hs", "lhs"}, Color: "#5E5086"},
	{Name: "Clojure", Extensions: []string{"clj", "cljs", "cljc", "edn"}, Color: "#DB5855"},
	{Name: "Lua", Extensions: []string{"lua"}, Color: "#000080"},
	{Name: "Perl", Extensions: []string{"pl", "pm"}, Color: "#0298C3"},
	{Name: "R", Extensions: []string{"r", "rmd"}, Color: "#198CE7"},
	{Name: "Dart", Extensions: []string{"dart"}, Color: "#00B4AB"},
	{Name: "Objective-C", Extensions: []string{"m", "mm"}, Color: "#438EFF"},
	{Name: "Shell", Extensions: []string{"sh", "bash", "zsh", "fish"}, Color: "#89E051"},
	{Name: "PowerShell", Extensions: []string{"ps1", "psm1", "psd1"}, Color: "#012456"},
	{Name: "HTML", Extensions: []string{"html", "htm", "xhtml"}, Color: "#E34C26"},
	{Name: "CSS", Extensions: []string{"css"}, Color: "#563D7C"},
	{Name: "SCSS", Extensions: []string{"scss", "sass"}, Color: "#C6538C"},
	{Name: "Vue", Extensions: []string{"vue"}, Color: "#41B883"},
	{Name: "Svelte", Extensions: []string{"svelte"}, Color: "#FF3E00"},
	{Name: "SQL", Extensions: []string{"sql"}, Color: "#E38C00"},
	{Name: "Zig", Extensions: []string{"zig"}, Color: "#EC915C"},
	{Name: "Nim", Extensions: []string{"nim", "nims"}, Color: "#FFC200"},
	{Name: "OCaml", Extensions: []string{"ml", "mli"}, Color: "#3BE133"},
	{Name: "F#", Extensions: []string{"fs", "fsi", "fsx"}, Color: "#B845FC"},
	{Name: "Groovy", Extensions: []string{"groovy", "gradle"}, Color: "#4298B8"},
	{Name: "Julia", Extensions: []string{"jl"}, Color: "#A270BA"},
	{Name: "Fortran", Extensions: []string{"f", "f90", "f95", "f03"}, Color: "#4D41B1"},
	{Name: "Assembly", Extensions: []string{"asm", "s"}, Color: "#6E4C13"},
	{Name: "Solidity", Extensions: []string{"sol"}, Color: "#AA6746"},
	{Name: "Terraform", Extensions: []string{"tf", "tfvars"}, Color: "#844FBA"},
	{Name: "Dockerfile", Extensions: []string{"dockerfile"}, Color: "#384D54"},
	{Name: "Makefile", Extensions: []string{"mk"}, Color: "#427819"},
	{Name: "Markdown", Extensions: []string{"md", "markdown"}, Color: "#083FA1"},
	{Name: "YAML", Extensions: []string{"yml", "yaml"}, Color: "#CB171E"},
	{Name: "JSON", Extensions: []string{"json", "jsonc"}, Color: "#292929"},
	{Name: "TOML", Extensions: []string{"toml"}, Color: "#9C4221"},
	{Name: "XML", Extensions: []string{"xml", "xsl", "xsd"}, Color: "#0060AC"},
	{Name: "Protocol Buffer", Extensions: []string{"proto"}, Color: "#E10098"},
	{Name: "GraphQL", Extensions: []string{"graphql", "gql"}, Color: "#E10098"},
	{Name: "Jupyter Notebook", Extensions: []string{"ipynb"}, Color: "#DA5B0B"},
	{Name: "TeX", Extensions: []string{"tex", "sty", "bib"}, Color: "#3D6117"},
	{Name: "Vim Script", Extensions: []string{"vim"}, Color: "#199F4B"},
	{Name: "CoffeeScript", Extensions: []string{"coffee"}, Color: "#244776"},
	{Name: "Crystal", Extensions: []string{"cr"}, Color: "#000100"},
	{Name: "D", Extensions: []string{"d", "di"}, Color: "#BA595E"},
	{Name: "V", Extensions: []string{"v", "vsh"}, Color: "#4F87C4"},
}
