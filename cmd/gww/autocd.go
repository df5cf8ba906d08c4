package main

import "fmt"

// autocdScript wraps the gww binary in a shell function that follows
// the GWW_CD line into the resolved worktree.
const autocdScript = `gww() {
    local output
    output=$(command gww "$@")
    local exit_code=$?
    echo "$output"
    if [ $exit_code -eq 0 ]; then
        local cd_path
        cd_path=$(echo "$output" | grep "^%[1]s" | cut -d: -f2-)
        [ -n "$cd_path" ] && cd "$cd_path"
    fi
    return $exit_code
}

_gww_cd() {
    local output
    output=$(command gww checkout "$@")
    local exit_code=$?
    if [ $exit_code -ne 0 ]; then
        echo "$output"
        return $exit_code
    fi
    local cd_path
    cd_path=$(echo "$output" | grep "^%[1]s" | cut -d: -f2-)
    [ -n "$cd_path" ] && cd "$cd_path"
}
`

func runAutocd() error {
	fmt.Print(autocdShellFunctions())
	return nil
}

func autocdShellFunctions() string {
	return fmt.Sprintf(autocdScript, cdPrefix)
}
