package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/gastos-client/internal/entity/expense"
)

func newAddCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Cria gastos, categorias e tipos de pagamento",
	}
	cmd.AddCommand(
		newAddExpenseCommand(o),
		newAddCategoryCommand(o),
		newAddPaymentTypeCommand(o),
	)
	return cmd
}

func newAddExpenseCommand(o *options) *cobra.Command {
	var description, amount, category, paymentType, date string

	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Adiciona um gasto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := expense.ParseAmount(amount)
			if err != nil {
				return err
			}

			c, err := o.core()
			if err != nil {
				return err
			}
			defer c.close()

			day, err := parseDate(date, c.cfg.App().Location())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			draft := expense.Draft{Description: description, Amount: value, Date: day}
			if category != "" {
				c.syncer.RefreshCategories(ctx)
				found, ok := expense.FindCategory(c.syncer.Store().Snapshot().Categories, category)
				if !ok {
					return errors.Errorf("categoria não encontrada: %s", category)
				}
				draft.CategoryID = found.ID
			}
			if paymentType != "" {
				c.syncer.RefreshPaymentTypes(ctx)
				found, ok := expense.FindPaymentType(c.syncer.Store().Snapshot().PaymentTypes, paymentType)
				if !ok {
					return errors.Errorf("tipo de pagamento não encontrado: %s", paymentType)
				}
				draft.PaymentTypeID = found.ID
			}

			created, err := c.syncer.CreateExpense(ctx, draft)
			if err != nil {
				return &reportedError{err: err}
			}
			fmt.Fprintf(o.out, "id: %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "descrição")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "valor, por exemplo 12,50")
	cmd.Flags().StringVarP(&category, "category", "c", "", "categoria (id ou nome)")
	cmd.Flags().StringVarP(&paymentType, "payment-type", "p", "", "tipo de pagamento (id ou nome)")
	cmd.Flags().StringVar(&date, "date", "", "data dd/mm/aaaa (padrão hoje)")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newAddCategoryCommand(o *options) *cobra.Command {
	var draft expense.CategoryDraft

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Cria uma categoria",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.core()
			if err != nil {
				return err
			}
			defer c.close()

			created, err := c.syncer.CreateCategory(cmd.Context(), draft)
			if err != nil {
				return &reportedError{err: err}
			}
			fmt.Fprintf(o.out, "id: %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&draft.Name, "name", "n", "", "nome")
	cmd.Flags().StringVar(&draft.Color, "color", "", "cor, por exemplo #e74c3c (padrão "+expense.DefaultColor+")")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAddPaymentTypeCommand(o *options) *cobra.Command {
	var draft expense.PaymentTypeDraft

	cmd := &cobra.Command{
		Use:   "payment-type",
		Short: "Cria um tipo de pagamento",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.core()
			if err != nil {
				return err
			}
			defer c.close()

			created, err := c.syncer.CreatePaymentType(cmd.Context(), draft)
			if err != nil {
				return &reportedError{err: err}
			}
			fmt.Fprintf(o.out, "id: %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&draft.Name, "name", "n", "", "nome")
	cmd.Flags().StringVar(&draft.Icon, "icon", "", "ícone (padrão "+expense.DefaultIcon+")")
	cmd.Flags().StringVar(&draft.Color, "color", "", "cor (padrão "+expense.DefaultColor+")")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
