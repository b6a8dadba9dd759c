package dlist

import (
	"testing"

	. "github.com/karlseguin/expect"
)

type ConfigurationTests struct{}

func Test_Configuration(t *testing.T) {
	Expectify(new(ConfigurationTests), t)
}

func (_ *ConfigurationTests) Defaults() {
	c := Configure(8)
	Expect(c.elementSize).To.Equal(8)
	Expect(c.maxSize).To.Equal(Unlimited)
	Expect(c.policy).To.Equal(RejectWhenFull)
	Expect(c.print == nil).To.Equal(true)
	Expect(c.compare == nil).To.Equal(true)
}

func (_ *ConfigurationTests) FluentChain() {
	c := Configure(4).
		MaxSize(3, EvictOldest).
		Compare(compareInts).
		Free(func(elem []byte) {}).
		Copy(func(dst, src []byte) { copy(dst, src) }).
		Print(func(elem []byte) string { return "" })
	Expect(c.maxSize).To.Equal(3)
	Expect(c.policy).To.Equal(EvictOldest)
	Expect(c.compare != nil).To.Equal(true)
	Expect(c.free != nil).To.Equal(true)
	Expect(c.copyFn != nil).To.Equal(true)
	Expect(c.print != nil).To.Equal(true)
}

func (_ *ConfigurationTests) CarriesOntoTheList() {
	l, err := New(Configure(4).MaxSize(7, EvictOldest).Compare(compareInts))
	Expect(err).To.Equal(nil)
	Expect(l.elementSize).To.Equal(4)
	Expect(l.maxSize).To.Equal(7)
	Expect(l.policy).To.Equal(EvictOldest)
	Expect(l.compare != nil).To.Equal(true)
}
