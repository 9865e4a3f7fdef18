package main

import "github.com/jcorbin/forsh/internal/token"

// collectDefinition takes the name of the word being defined, then its body
// up to ;. Body tokens keep only their text.
func (vm *VM) collectDefinition(def *definition, tok token.Token) {
	switch {
	case !def.named:
		def.name, def.named = tok.Text, true
		vm.logf(":", "define %v", def.name)
	case tok.Is(";"):
		vm.mode = nil
		vm.logf(";", "%v %q", def.name, def.body)
		vm.dict[def.name] = Defined(def.body)
	default:
		def.body = append(def.body, tok.Text)
	}
}
