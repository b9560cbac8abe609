package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/kodrf/internal/client/order"
	"github.com/iudanet/kodrf/internal/client/schedule"
	"github.com/iudanet/kodrf/internal/models"
)

var errNoCompanies = errors.New("no companies yet. Please run 'kodrf companies add <inn>' first")

// upcomingDates сколько ближайших дат показывать для регулярного слота
const upcomingDates = 6

type orderView struct {
	SubmissionID string
	Order        models.Order
	Quote        models.Quote
	Paid         bool
}

func (c *Cli) runOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	fs.SetOutput(c.io)
	pay := fs.Bool("pay", false, "save the order and proceed to online payment")

	// флаги допускаются до и после идентификатора слота
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
	if len(positional) != 1 {
		return fmt.Errorf("usage: kodrf order <supply-id> [-pay]")
	}

	id, err := strconv.ParseInt(positional[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid supply id %q", positional[0])
	}

	supplies, err := c.schedule.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	supply, ok := schedule.Find(supplies, id)
	if !ok {
		return fmt.Errorf("supply slot %d not found", id)
	}

	c.cache.Wait()
	switch schedule.Route(c.cache) {
	case schedule.RouteLogin:
		return ErrNotAuthenticated
	case schedule.RouteAddCompany:
		return errNoCompanies
	}

	mode := order.ModeSave
	if *pay {
		mode = order.ModeSaveAndPay
	}

	c.io.Printf("\n=== %s ===\n%s\n\n", supply.Title, supply.Describe())

	form, err := c.readForm(supply, mode)
	if err != nil {
		return err
	}

	result, err := c.orders.Submit(ctx, supply, form, mode)
	if err != nil {
		var verr *order.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid order: %w", verr)
		}
		return err
	}

	c.render(orderResultTemplate, orderView{
		SubmissionID: result.SubmissionID,
		Order:        result.Order,
		Quote:        result.Quote,
		Paid:         result.Order.Payment,
	})
	return nil
}

// readForm опрашивает пользователя. Значения не проверяются здесь, это делает Workflow.
func (c *Cli) readForm(supply models.Supply, mode order.Mode) (order.Form, error) {
	var form order.Form
	var err error

	companies := c.cache.Companies()
	companyNames := make([]string, len(companies))
	for i, company := range companies {
		companyNames[i] = fmt.Sprintf("%s (INN %s)", company.Name, company.INN)
	}
	idx, err := c.choose("Company", companyNames)
	if err != nil {
		return form, err
	}
	form.CompanyINN = companies[idx].INN

	warehouseNames := make([]string, len(supply.Warehouses))
	for i, w := range supply.Warehouses {
		warehouseNames[i] = fmt.Sprintf("%s: %s, %s", w.Channel, w.Name, w.City)
	}
	if form.WarehouseIndex, err = c.choose("Warehouse", warehouseNames); err != nil {
		return form, err
	}

	cityNames := make([]string, len(supply.DepartureCities))
	for i, city := range supply.DepartureCities {
		cityNames[i] = city.CityName
	}
	if len(cityNames) > 0 {
		idx, err := c.choose("Departure city", cityNames)
		if err != nil {
			return form, err
		}
		form.DepartureCity = cityNames[idx]
	}

	typeNames := make([]string, len(models.SupplyTypes))
	for i, t := range models.SupplyTypes {
		typeNames[i] = string(t)
	}
	idx, err = c.choose("Supply type", typeNames)
	if err != nil {
		return form, err
	}
	form.SupplyType = models.SupplyTypes[idx]

	if form.DepartureDate, err = c.readDepartureDate(supply); err != nil {
		return form, err
	}

	if form.Phone, err = c.io.ReadInput("Phone (8XXXXXXXXXX): "); err != nil {
		return form, fmt.Errorf("failed to read phone: %w", err)
	}

	if form.Boxes, err = c.readBoxes(); err != nil {
		return form, err
	}

	if form.Pickup, err = c.confirm("Pickup from your address?"); err != nil {
		return form, err
	}
	commentPrompt := "Comment (optional): "
	if form.Pickup {
		commentPrompt = "Pickup address: "
	}
	if form.Comment, err = c.io.ReadInput(commentPrompt); err != nil {
		return form, fmt.Errorf("failed to read comment: %w", err)
	}

	if form.WarehouseIndex < len(supply.Warehouses) && supply.Warehouses[form.WarehouseIndex].RequiresOrderNumber() {
		if form.OrderNumber, err = c.io.ReadInput("Ozon order number: "); err != nil {
			return form, fmt.Errorf("failed to read order number: %w", err)
		}
	}

	if mode == order.ModeSave {
		if form.OnlinePayment, err = c.confirm("Pay online?"); err != nil {
			return form, err
		}
	}

	return form, nil
}

// choose выбор из списка по номеру. Пустой ввод выбирает первый вариант,
// единственный вариант выбирается без вопроса.
func (c *Cli) choose(title string, options []string) (int, error) {
	switch len(options) {
	case 0:
		return 0, nil
	case 1:
		c.io.Printf("%s: %s\n", title, options[0])
		return 0, nil
	}

	c.io.Printf("%s:\n", title)
	for i, option := range options {
		c.io.Printf("  %d. %s\n", i+1, option)
	}
	for {
		input, err := c.io.ReadInput(fmt.Sprintf("Choose %s [1]: ", strings.ToLower(title)))
		if err != nil {
			return 0, fmt.Errorf("failed to read choice: %w", err)
		}
		if input == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(input)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		c.io.Printf("Enter a number from 1 to %d\n", len(options))
	}
}

func (c *Cli) confirm(question string) (bool, error) {
	input, err := c.io.ReadInput(question + " [y/N]: ")
	if err != nil {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(input) {
	case "y", "yes", "д", "да":
		return true, nil
	default:
		return false, nil
	}
}

// readDepartureDate для датированного слота предлагает дату слота,
// для регулярного показывает ближайшие доступные даты.
func (c *Cli) readDepartureDate(supply models.Supply) (*models.Date, error) {
	kind := supply.Kind()
	prompt := "Departure date (YYYY-MM-DD): "
	if kind.Recurring() {
		next := models.NewRecurringCalendar().Next(kind, models.DateOf(c.now()), upcomingDates)
		if len(next) > 0 {
			names := make([]string, len(next))
			for i, d := range next {
				names[i] = d.String() + " (" + models.WeekdayShort(d.Weekday()) + ")"
			}
			c.io.Printf("Nearest departures: %s\n", strings.Join(names, ", "))
		}
	} else {
		prompt = fmt.Sprintf("Departure date (YYYY-MM-DD) [%s]: ", supply.DepartureDate)
	}

	for {
		input, err := c.io.ReadInput(prompt)
		if err != nil {
			return nil, fmt.Errorf("failed to read departure date: %w", err)
		}
		if input == "" {
			if kind.Recurring() {
				return nil, nil
			}
			date := supply.DepartureDate
			return &date, nil
		}
		date, err := models.ParseDate(input)
		if err == nil {
			return &date, nil
		}
		c.io.Printf("Invalid date %q, use YYYY-MM-DD\n", input)
	}
}

// readBoxes читает строки описи "длина ширина высота количество" до пустой строки
func (c *Cli) readBoxes() ([]models.Box, error) {
	c.io.Println("Boxes: length width height (cm) and amount, empty line to finish")
	var boxes []models.Box
	for {
		input, err := c.io.ReadInput(fmt.Sprintf("  #%d: ", len(boxes)+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read box: %w", err)
		}
		if input == "" {
			return boxes, nil
		}
		box, err := parseBox(input)
		if err != nil {
			c.io.Printf("  %v\n", err)
			continue
		}
		boxes = append(boxes, box)
	}
}

// boxSeparators разделители габаритов: латинская и кириллическая "х", знак умножения
var boxSeparators = strings.NewReplacer("x", " ", "X", " ", "х", " ", "Х", " ", "×", " ", "*", " ")

func parseBox(s string) (models.Box, error) {
	fields := strings.Fields(boxSeparators.Replace(s))
	if len(fields) != 4 {
		return models.Box{}, fmt.Errorf("expected 4 numbers: length width height amount")
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return models.Box{}, fmt.Errorf("invalid number %q", f)
		}
		values[i] = n
	}
	return models.Box{Length: values[0], Width: values[1], Height: values[2], Amount: values[3]}, nil
}
