package cart

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func assertItems(t *testing.T, c *Cart, want ...string) {
	t.Helper()
	got := c.View()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cart = %v, want %v", got, want)
	}
}

func TestAddThenViewKeepsOrder(t *testing.T) {
	c := New()
	c.Add("Margherita")
	c.Add("Hawaiian")
	c.Add("Margherita")

	assertItems(t, c, "Margherita", "Hawaiian", "Margherita")
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
}

func TestViewReturnsSnapshot(t *testing.T) {
	c := New()
	c.Add("Pepperoni")

	items := c.View()
	items[0] = "Vegetarian"
	c.Add("Hawaiian")

	assertItems(t, c, "Pepperoni", "Hawaiian")
	if !reflect.DeepEqual(items, []string{"Vegetarian"}) {
		t.Fatalf("snapshot changed: %v", items)
	}
}

func TestRemovePresentItemRemovesFirstOccurrence(t *testing.T) {
	c := New()
	c.Add("Margherita")
	c.Add("Hawaiian")
	c.Add("Margherita")

	if !c.Remove("Margherita") {
		t.Fatal("Remove() = false, want true")
	}
	assertItems(t, c, "Hawaiian", "Margherita")
}

func TestRemoveAbsentItemLeavesCartUnchanged(t *testing.T) {
	c := New()
	c.Add("Hawaiian")

	if c.Remove("Pepperoni") {
		t.Fatal("Remove() = true for an absent item")
	}
	assertItems(t, c, "Hawaiian")
}

func TestClear(t *testing.T) {
	c := New()
	c.Clear()
	assertItems(t, c)

	c.Add("Pepperoni")
	c.Add("Vegetarian")
	c.Clear()
	assertItems(t, c)
	if c.Len() != 0 {
		t.Fatalf("Len() = %d after Clear", c.Len())
	}
}

func TestSettleClearsOnlyOnSuccess(t *testing.T) {
	c := New()
	c.Add("Pepperoni")

	boom := errors.New("boom")
	var seen []string
	err := c.Settle(func(items []string) error {
		seen = items
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Settle() error = %v, want %v", err, boom)
	}
	if !reflect.DeepEqual(seen, []string{"Pepperoni"}) {
		t.Fatalf("Settle saw %v", seen)
	}
	assertItems(t, c, "Pepperoni")

	if err := c.Settle(func([]string) error { return nil }); err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	assertItems(t, c)
}

func TestZeroValueCart(t *testing.T) {
	var c Cart
	c.Add("Hawaiian")
	assertItems(t, &c, "Hawaiian")
}

func TestConcurrentAdds(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add("Margherita")
		}()
	}
	wg.Wait()
	if c.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", c.Len())
	}
}
