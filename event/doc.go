// Package event describes what the screen reader's command layer asks the
// rest of the system to do.
//
// # Events
//
// A ScreenReaderEvent is one of three shapes:
//
//	ChangeMode(BrowseMode)   - switch interaction mode
//	Next(Heading)            - move to the next element of a kind
//	Previous(TableCell)      - move to the previous element of a kind
//
// The text form above is what ParseEvent accepts and String produces, so
// events can be written directly in keymap files.
//
// # Topics
//
// Each event kind maps to a hierarchical topic with dot notation:
//
//	mode.change        - ChangeMode
//	navigate.next      - Next
//	navigate.previous  - Previous
//
// Subscriptions match topics with wildcards:
//
//	navigate.*   - matches navigate.next and navigate.previous
//	**           - matches every topic
//
// # Basic Usage
//
//	bus := event.NewBus()
//	sub, err := bus.Subscribe("navigate.*", event.HandlerFunc(
//	    func(ctx context.Context, ev event.ScreenReaderEvent) error {
//	        return navigator.Move(ev)
//	    }))
//	if err != nil {
//	    return err
//	}
//	defer sub.Unsubscribe()
//
//	err = bus.Publish(ctx, event.Next(event.Heading))
//
// Delivery is synchronous: Publish returns after every matching handler
// has run, in priority order.
package event
