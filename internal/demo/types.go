// SPDX-License-Identifier: MIT

package demo

import (
	"fmt"
	"io"
	"reflect"
)

// Aircraft is satisfied by anything that flies; there is no "implements" clause.
type Aircraft interface {
	Engine() string
	BodyColor() string
}

// airframe holds what every aircraft shares.
type airframe struct {
	color string
}

func (a airframe) BodyColor() string { return a.color }

type glider struct{ airframe }

func (glider) Engine() string { return "none" }

type jet struct {
	airframe
	engines int
}

func (j jet) Engine() string { return fmt.Sprintf("%d turbofans", j.engines) }

// parent and child show field and method shadowing through embedding.
type parent struct {
	I int
}

func (p parent) Describe() string { return fmt.Sprintf("parent i=%d", p.I) }

type child struct {
	parent
	I int
}

// Describe shadows parent.Describe; the embedded method stays reachable.
func (c child) Describe() string {
	return fmt.Sprintf("child i=%d, embedded i=%d", c.I, c.parent.I)
}

// centralTraffic and continental are two independent interfaces one type can satisfy.
type centralTraffic interface {
	RedStop() string
	GreenGo() string
	YellowWait() string
}

type continental interface {
	TrainSymbol() string
}

type australianTraffic struct{}

func (australianTraffic) RedStop() string { return "Red: Stop" }
func (australianTraffic) GreenGo() string { return "Green: Go" }
func (australianTraffic) YellowWait() string { return "Yellow: Wait" }
func (australianTraffic) TrainSymbol() string { return "Other Interface: Train Symbol" }
func (australianTraffic) OtherThanInterface() string { return "Method not in interface" }

// account demonstrates a constructor enforcing an invariant and a counter
// shared by every value built from the same registry.
type account struct {
	id      int
	owner   string
	balance int
}

type registry struct {
	bank  string
	count int
}

func (r *registry) newAccount(owner string, opening int) (*account, error) {
	if opening < 0 {
		return nil, fmt.Errorf("new account for %s: negative opening balance %d", owner, opening)
	}
	r.count++

	return &account{id: r.count, owner: owner, balance: opening}, nil
}

// Wallet mixes exported and unexported fields. Only the capitalized ones are
// visible to other packages; the rest are reachable solely through methods.
type Wallet struct {
	Owner   string
	Balance int
	pin     string
}

// Verify reports whether pin matches without exposing it.
func (w Wallet) Verify(pin string) bool { return w.pin == pin }

func sum(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}

	return total
}

func runTypes(w io.Writer, _ Input) error {
	p := newPrinter(w)

	p.section("Interfaces And Embedding")
	fleet := []Aircraft{glider{airframe{"white"}}, jet{airframe{"silver"}, 2}}
	for _, a := range fleet {
		p.printf("%T: engine=%s color=%s\n", a, a.Engine(), a.BodyColor())
	}

	p.section("Shadowing")
	c := child{parent: parent{I: 10}, I: 20}
	p.println(c.Describe())
	p.println(c.parent.Describe())

	p.section("Multiple Interfaces")
	var ct centralTraffic = australianTraffic{}
	p.println(ct.RedStop())
	p.println(ct.GreenGo())
	p.println(ct.YellowWait())
	if cont, ok := ct.(continental); ok {
		p.println(cont.TrainSymbol())
	}
	p.println(australianTraffic{}.OtherThanInterface())

	p.section("Constructors And Shared State")
	reg := &registry{bank: "Go Savings"}
	for _, owner := range []string{"ana", "ben"} {
		acc, err := reg.newAccount(owner, 100)
		if err != nil {
			return err
		}
		p.printf("account #%d owner=%s balance=%d bank=%s\n", acc.id, acc.owner, acc.balance, reg.bank)
	}
	if _, err := reg.newAccount("eve", -5); err != nil {
		p.printf("rejected: %v\n", err)
	}
	p.printf("accounts opened: %d\n", reg.count)

	p.section("Visibility")
	wt := reflect.TypeOf(Wallet{})
	for i := range wt.NumField() {
		f := wt.Field(i)
		p.printf("Wallet.%s exported=%t\n", f.Name, f.IsExported())
	}
	wallet := Wallet{Owner: "ana", Balance: 100, pin: "1234"}
	p.printf("Verify(\"0000\")=%t Verify(\"1234\")=%t\n", wallet.Verify("0000"), wallet.Verify("1234"))

	p.section("Variadic Functions")
	p.printf("sum()=%d sum(1, 2)=%d sum(1, 2, 3)=%d\n", sum(), sum(1, 2), sum(1, 2, 3))

	return p.err
}
