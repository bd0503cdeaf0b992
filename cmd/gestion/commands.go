package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"manolos-gestion/internal/appdata"
	"manolos-gestion/internal/platform/money"
)

type SummaryCommand struct {
	*Meta
}

func (c *SummaryCommand) Synopsis() string { return "Show clients, pets and outstanding charges" }

func (c *SummaryCommand) Help() string {
	return strings.TrimSpace(`
Usage: gestion summary

  Loads every collection and prints one line per client with its pets and
  the amount still pending or overdue.
`)
}

func (c *SummaryCommand) Run(args []string) int {
	cache, ok := c.load(context.Background())
	if !ok {
		return 1
	}
	d := cache.Snapshot()

	c.Ui.Output(fmt.Sprintf("%d clients, %d pets, %d services, %d charges, %d reminders",
		len(d.Clients), len(d.Pets), len(d.Services), len(d.Charges), len(d.Reminders)))

	owed := map[string]int64{}
	for _, ch := range d.Charges {
		if ch.Status != appdata.ChargePaid {
			owed[ch.ClientID] += ch.Total()
		}
	}

	clients := d.Clients
	sort.SliceStable(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	for _, cl := range clients {
		pets := cache.PetsOf(cl.ID)
		names := make([]string, 0, len(pets))
		for _, p := range pets {
			names = append(names, p.Name)
		}
		c.Ui.Output(fmt.Sprintf("%s  %s  pets=%d [%s]  owed=%s",
			cl.ID, cl.Name, len(pets), strings.Join(names, ", "), money.FormatCOP(owed[cl.ID])))
	}
	return 0
}

type ClientsAddCommand struct {
	*Meta
}

func (c *ClientsAddCommand) Synopsis() string { return "Create a client" }

func (c *ClientsAddCommand) Help() string {
	return strings.TrimSpace(`
Usage: gestion clients add -name=<name> -email=<email> -phone=<phone> [-address=<address>]
`)
}

func (c *ClientsAddCommand) Run(args []string) int {
	var in appdata.NewClient
	fs := c.flagSet("clients add")
	fs.StringVar(&in.Name, "name", "", "")
	fs.StringVar(&in.Email, "email", "", "")
	fs.StringVar(&in.Phone, "phone", "", "")
	fs.StringVar(&in.Address, "address", "", "")
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	cache, ok := c.load(ctx)
	if !ok {
		return 1
	}
	id, err := cache.AddClient(ctx, in)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error creating client: %s", err))
		return 1
	}
	c.Ui.Output(id)
	return 0
}

type ClientsDeleteCommand struct {
	*Meta
}

func (c *ClientsDeleteCommand) Synopsis() string {
	return "Delete a client with its pets, charges and reminders"
}

func (c *ClientsDeleteCommand) Help() string {
	return strings.TrimSpace(`
Usage: gestion clients delete <client-id>
`)
}

func (c *ClientsDeleteCommand) Run(args []string) int {
	id, ok := c.oneArg(args, "client id")
	if !ok {
		return 1
	}

	ctx := context.Background()
	cache, ok := c.load(ctx)
	if !ok {
		return 1
	}
	pets, charges := len(cache.PetsOf(id)), len(cache.ChargesOf(id))

	if err := cache.DeleteClient(ctx, id); err != nil {
		if appdata.IsNotFound(err) {
			c.Ui.Error(fmt.Sprintf("Client %s not found", id))
			return 1
		}
		c.Ui.Error(fmt.Sprintf("Error deleting client: %s", err))
		return 1
	}
	c.Ui.Output(fmt.Sprintf("Deleted client %s (%d pets, %d charges)", id, pets, charges))
	return 0
}

type ChargesPayCommand struct {
	*Meta
}

func (c *ChargesPayCommand) Synopsis() string { return "Mark a charge as paid" }

func (c *ChargesPayCommand) Help() string {
	return strings.TrimSpace(`
Usage: gestion charges pay <charge-id>
`)
}

func (c *ChargesPayCommand) Run(args []string) int {
	id, ok := c.oneArg(args, "charge id")
	if !ok {
		return 1
	}

	ctx := context.Background()
	cache, ok := c.load(ctx)
	if !ok {
		return 1
	}
	if err := cache.SetChargeStatus(ctx, id, appdata.ChargePaid); err != nil {
		c.Ui.Error(fmt.Sprintf("Error updating charge: %s", err))
		return 1
	}

	ch, _ := cache.Charge(id)
	c.Ui.Output(fmt.Sprintf("Charge %s paid (%s)", id, money.FormatCOP(ch.Total())))
	return 0
}

type ChargesReceiptCommand struct {
	*Meta
}

func (c *ChargesReceiptCommand) Synopsis() string { return "Download the PDF receipt of a charge" }

func (c *ChargesReceiptCommand) Help() string {
	return strings.TrimSpace(`
Usage: gestion charges receipt [-out=<file>] <charge-id>

  Writes receipt_<charge-id>.pdf in the current directory unless -out is set.
`)
}

func (c *ChargesReceiptCommand) Run(args []string) int {
	var out string
	fs := c.flagSet("charges receipt")
	fs.StringVar(&out, "out", "", "")
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	id, ok := c.oneArg(fs.Args(), "charge id")
	if !ok {
		return 1
	}
	if out == "" {
		out = "receipt_" + id + ".pdf"
	}

	cache, err := c.Open()
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error configuring client: %s", err))
		return 1
	}
	doc, err := cache.ChargeReceipt(context.Background(), id)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error downloading receipt: %s", err))
		return 1
	}
	if err := os.WriteFile(out, doc, 0o644); err != nil {
		c.Ui.Error(fmt.Sprintf("Error writing %s: %s", out, err))
		return 1
	}
	c.Ui.Output(out)
	return 0
}

type RemindersSendCommand struct {
	*Meta
}

func (c *RemindersSendCommand) Synopsis() string { return "Create a reminder for a client" }

func (c *RemindersSendCommand) Help() string {
	return strings.TrimSpace(`
Usage: gestion reminders send -client=<client-id> [-channel=Email|WhatsApp] [-subject=..] [-message=..]

  Email reminders are delivered by the gateway right away; the resulting
  status (sent or failed) is printed.
`)
}

func (c *RemindersSendCommand) Run(args []string) int {
	var in appdata.NewReminder
	var channel string
	fs := c.flagSet("reminders send")
	fs.StringVar(&in.ClientID, "client", "", "")
	fs.StringVar(&channel, "channel", string(appdata.ChannelEmail), "")
	fs.StringVar(&in.Date, "date", "", "")
	fs.StringVar(&in.Subject, "subject", "", "")
	fs.StringVar(&in.Message, "message", "", "")
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	in.Channel = appdata.Channel(channel)

	ctx := context.Background()
	cache, ok := c.load(ctx)
	if !ok {
		return 1
	}
	rem, err := cache.AddReminder(ctx, in)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error creating reminder: %s", err))
		return 1
	}
	if rem.Status == appdata.ReminderFailed {
		c.Ui.Warn(fmt.Sprintf("Reminder %s created but delivery failed", rem.ID))
		return 0
	}
	c.Ui.Output(fmt.Sprintf("Reminder %s %s", rem.ID, rem.Status))
	return 0
}
