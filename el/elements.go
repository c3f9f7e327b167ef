package el

import "github.com/htmltag-dev/htmltag/pkg/tag"

// Document structure elements

func Html(args ...any) *tag.Tag  { return newTag("html", args) }
func Head(args ...any) *tag.Tag  { return newTag("head", args) }
func Body(args ...any) *tag.Tag  { return newTag("body", args) }
func Title(args ...any) *tag.Tag { return newTag("title", args) }
func Meta(args ...any) *tag.Tag  { return newTag("meta", args) }
func Link(args ...any) *tag.Tag  { return newTag("link", args) }
func Base(args ...any) *tag.Tag  { return newTag("base", args) }

// Content sectioning elements

func Header(args ...any) *tag.Tag  { return newTag("header", args) }
func Footer(args ...any) *tag.Tag  { return newTag("footer", args) }
func Main(args ...any) *tag.Tag    { return newTag("main", args) }
func Nav(args ...any) *tag.Tag     { return newTag("nav", args) }
func Section(args ...any) *tag.Tag { return newTag("section", args) }
func Article(args ...any) *tag.Tag { return newTag("article", args) }
func Aside(args ...any) *tag.Tag   { return newTag("aside", args) }
func Address(args ...any) *tag.Tag { return newTag("address", args) }
func H1(args ...any) *tag.Tag      { return newTag("h1", args) }
func H2(args ...any) *tag.Tag      { return newTag("h2", args) }
func H3(args ...any) *tag.Tag      { return newTag("h3", args) }
func H4(args ...any) *tag.Tag      { return newTag("h4", args) }
func H5(args ...any) *tag.Tag      { return newTag("h5", args) }
func H6(args ...any) *tag.Tag      { return newTag("h6", args) }

// Text content elements

func Div(args ...any) *tag.Tag        { return newTag("div", args) }
func P(args ...any) *tag.Tag          { return newTag("p", args) }
func Span(args ...any) *tag.Tag       { return newTag("span", args) }
func Pre(args ...any) *tag.Tag        { return newTag("pre", args) }
func Blockquote(args ...any) *tag.Tag { return newTag("blockquote", args) }
func Ul(args ...any) *tag.Tag         { return newTag("ul", args) }
func Ol(args ...any) *tag.Tag         { return newTag("ol", args) }
func Li(args ...any) *tag.Tag         { return newTag("li", args) }
func Dl(args ...any) *tag.Tag         { return newTag("dl", args) }
func Dt(args ...any) *tag.Tag         { return newTag("dt", args) }
func Dd(args ...any) *tag.Tag         { return newTag("dd", args) }
func Hr(args ...any) *tag.Tag         { return newTag("hr", args) }
func Figure(args ...any) *tag.Tag     { return newTag("figure", args) }
func Figcaption(args ...any) *tag.Tag { return newTag("figcaption", args) }

// Inline text semantics

func A(args ...any) *tag.Tag      { return newTag("a", args) }
func Strong(args ...any) *tag.Tag { return newTag("strong", args) }
func Em(args ...any) *tag.Tag     { return newTag("em", args) }
func B(args ...any) *tag.Tag      { return newTag("b", args) }
func I(args ...any) *tag.Tag      { return newTag("i", args) }
func U(args ...any) *tag.Tag      { return newTag("u", args) }
func S(args ...any) *tag.Tag      { return newTag("s", args) }
func Small(args ...any) *tag.Tag  { return newTag("small", args) }
func Mark(args ...any) *tag.Tag   { return newTag("mark", args) }
func Sub(args ...any) *tag.Tag    { return newTag("sub", args) }
func Sup(args ...any) *tag.Tag    { return newTag("sup", args) }
func Code(args ...any) *tag.Tag   { return newTag("code", args) }
func Kbd(args ...any) *tag.Tag    { return newTag("kbd", args) }
func Samp(args ...any) *tag.Tag   { return newTag("samp", args) }
func Var(args ...any) *tag.Tag    { return newTag("var", args) }
func Abbr(args ...any) *tag.Tag   { return newTag("abbr", args) }
func Time_(args ...any) *tag.Tag  { return newTag("time", args) }
func Cite(args ...any) *tag.Tag   { return newTag("cite", args) }
func Q(args ...any) *tag.Tag      { return newTag("q", args) }
func Dfn(args ...any) *tag.Tag    { return newTag("dfn", args) }
func Bdi(args ...any) *tag.Tag    { return newTag("bdi", args) }
func Bdo(args ...any) *tag.Tag    { return newTag("bdo", args) }
func Br(args ...any) *tag.Tag     { return newTag("br", args) }
func Wbr(args ...any) *tag.Tag    { return newTag("wbr", args) }

// Form elements

func Form(args ...any) *tag.Tag     { return newTag("form", args) }
func Input(args ...any) *tag.Tag    { return newTag("input", args) }
func Textarea(args ...any) *tag.Tag { return newTag("textarea", args) }
func Select(args ...any) *tag.Tag   { return newTag("select", args) }
func Option(args ...any) *tag.Tag   { return newTag("option", args) }
func Optgroup(args ...any) *tag.Tag { return newTag("optgroup", args) }
func Button(args ...any) *tag.Tag   { return newTag("button", args) }
func Label(args ...any) *tag.Tag    { return newTag("label", args) }
func Fieldset(args ...any) *tag.Tag { return newTag("fieldset", args) }
func Legend(args ...any) *tag.Tag   { return newTag("legend", args) }
func Datalist(args ...any) *tag.Tag { return newTag("datalist", args) }
func Output(args ...any) *tag.Tag   { return newTag("output", args) }
func Progress(args ...any) *tag.Tag { return newTag("progress", args) }
func Meter(args ...any) *tag.Tag    { return newTag("meter", args) }

// Table elements

func Table(args ...any) *tag.Tag    { return newTag("table", args) }
func Thead(args ...any) *tag.Tag    { return newTag("thead", args) }
func Tbody(args ...any) *tag.Tag    { return newTag("tbody", args) }
func Tfoot(args ...any) *tag.Tag    { return newTag("tfoot", args) }
func Tr(args ...any) *tag.Tag       { return newTag("tr", args) }
func Th(args ...any) *tag.Tag       { return newTag("th", args) }
func Td(args ...any) *tag.Tag       { return newTag("td", args) }
func Caption(args ...any) *tag.Tag  { return newTag("caption", args) }
func Colgroup(args ...any) *tag.Tag { return newTag("colgroup", args) }
func Col(args ...any) *tag.Tag      { return newTag("col", args) }

// Media elements

func Img(args ...any) *tag.Tag     { return newTag("img", args) }
func Picture(args ...any) *tag.Tag { return newTag("picture", args) }
func Source(args ...any) *tag.Tag  { return newTag("source", args) }
func Video(args ...any) *tag.Tag   { return newTag("video", args) }
func Audio(args ...any) *tag.Tag   { return newTag("audio", args) }
func Track(args ...any) *tag.Tag   { return newTag("track", args) }
func Iframe(args ...any) *tag.Tag  { return newTag("iframe", args) }
func Embed(args ...any) *tag.Tag   { return newTag("embed", args) }
func Object(args ...any) *tag.Tag  { return newTag("object", args) }
func Canvas(args ...any) *tag.Tag  { return newTag("canvas", args) }
func Area(args ...any) *tag.Tag    { return newTag("area", args) }

// Interactive elements

func Details(args ...any) *tag.Tag { return newTag("details", args) }
func Summary(args ...any) *tag.Tag { return newTag("summary", args) }
func Dialog(args ...any) *tag.Tag  { return newTag("dialog", args) }
func Menu(args ...any) *tag.Tag    { return newTag("menu", args) }

// Scripting elements

func Script(args ...any) *tag.Tag   { return newTag("script", args) }
func Noscript(args ...any) *tag.Tag { return newTag("noscript", args) }
func Template(args ...any) *tag.Tag { return newTag("template", args) }
func Slot(args ...any) *tag.Tag     { return newTag("slot", args) }
func Style(args ...any) *tag.Tag    { return newTag("style", args) }
