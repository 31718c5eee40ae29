// Package parse is the syntax-repair boundary of the scene pipeline. Language
// models routinely emit JSON with trailing commas, single or smart quotes,
// comments, unquoted keys and missing closing brackets; a [Repairer] turns
// such text into a decoded value plus a human-readable description of every
// fix it applied.
//
// The default implementation, [JSONRepairer], tries strict decoding first and
// only then hands the text to github.com/kaptinlin/jsonrepair. Values that an
// LLM echoed in JSON Schema form ({"type": "string", "value": "park"}) are
// unwrapped afterwards.
//
// [ParseStringAs] is the generic convenience used for configuration values:
// it converts primitives directly and routes complex types through the same
// repair path.
package parse
