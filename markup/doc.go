// The markup subpackage parses a small bracket markup into qtxt
// fragments.
//
// Styled spans are opened with a tag with one or more attributes and
// closed with [/]. Spans can be nested:
//   Hello [color=#ff0000]red [scale=24]and big[/][/] world!
//
// Supported attributes:
//   - color: #rgb, #rrggbb or #rrggbbaa.
//   - font: a numeric font ID, or a font name if a library is given.
//   - scale: a pixel size, like 24, or a non-uniform WxH size, like 24x16.
//
// Brackets and backslashes can be escaped with a backslash.
package markup
