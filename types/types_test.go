package types

import "testing"

func TestKindNames(t *testing.T) {
	for kind := EOF; kind <= WHILE; kind++ {
		if _, ok := kindNames[kind]; !ok {
			t.Errorf("kind %d has no name", int(kind))
		}
	}
	if len(kindNames) != int(WHILE)+1 {
		t.Errorf("%d names for %d kinds", len(kindNames), int(WHILE)+1)
	}
	if got := (WHILE + 1).String(); got != "TokenKind(41)" {
		t.Errorf("unknown kind printed as %q", got)
	}
	if EOF.String() != "EOF" || LPAREN != EOF+1 {
		t.Error("EOF must be directly followed by the punctuation kinds")
	}
}
