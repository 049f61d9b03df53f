package mcpserver

import (
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

// GetArgs extracts the arguments map from a CallToolRequest.
// Returns an error if the arguments are not in the expected format.
func GetArgs(req mcplib.CallToolRequest) (map[string]any, error) {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid arguments format")
	}
	return args, nil
}

// GetStringArg extracts a required string argument from the arguments map.
// Returns an error if the argument is missing or not a string.
func GetStringArg(args map[string]any, name string) (string, error) {
	val, ok := args[name].(string)
	if !ok {
		return "", fmt.Errorf("%s argument is required and must be a string", name)
	}
	return val, nil
}

// GetOptionalStringArg extracts an optional string argument from the arguments map.
// Returns the default value if the argument is missing or not a string.
func GetOptionalStringArg(args map[string]any, name string, defaultVal string) string {
	if val, ok := args[name].(string); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetOptionalNumberArg extracts an optional numeric argument. JSON numbers
// arrive as float64; integers are accepted for callers building requests
// in Go. The second result reports whether the argument was present.
func GetOptionalNumberArg(args map[string]any, name string) (float64, bool, error) {
	switch val := args[name].(type) {
	case nil:
		return 0, false, nil
	case float64:
		return val, true, nil
	case int:
		return float64(val), true, nil
	default:
		return 0, false, fmt.Errorf("%s argument must be a number", name)
	}
}

// GetOptionalBoolArg extracts an optional boolean argument. The second
// result reports whether the argument was present.
func GetOptionalBoolArg(args map[string]any, name string) (bool, bool, error) {
	switch val := args[name].(type) {
	case nil:
		return false, false, nil
	case bool:
		return val, true, nil
	default:
		return false, false, fmt.Errorf("%s argument must be a boolean", name)
	}
}
