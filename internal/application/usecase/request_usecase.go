package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// Kinds de solicitud. Coinciden con el segmento de ruta de la API.
const (
	KindPrice = "price"
	KindList  = "list"
	KindEdit  = "edit"
)

// Estados de una solicitud. Validating y Submitting son transitorios dentro de
// Submit; lo observable desde afuera es open / closed.
const (
	StatusOpen       = "open"
	StatusValidating = "validating"
	StatusSubmitting = "submitting"
	StatusClosed     = "closed"
)

// listLine fila de la lista: ítem congelado al abrir, con su cantidad.
type listLine struct {
	item     entity.CatalogItem
	quantity int
}

// workflowState estado de trabajo de una solicitud abierta. Abrir de nuevo la
// reemplaza por completo: no hay arrastre de formulario entre aperturas.
type workflowState struct {
	kind   string
	status string
	item   entity.CatalogItem // price / edit
	lines  []listLine         // list
}

// RequestUseCase las tres solicitudes del catálogo (precio, lista, edición).
// Cada sesión puede tener a lo sumo una solicitud abierta por tipo; entre
// sesiones y entre tipos son independientes, sin exclusión mutua.
//
// El envío es optimista: como el transporte no puede leer el resultado remoto
// (ver ports.RequestSubmitter), un round-trip completo se reporta como éxito y
// cierra la solicitud. Un fallo de transporte la deja abierta con los datos
// intactos para reintentar.
type RequestUseCase struct {
	catalogUC   *CatalogUseCase
	favoritesUC *FavoritesUseCase
	submitter   ports.RequestSubmitter
	log         *logger.Logger

	mu   sync.Mutex
	open map[string]map[string]*workflowState // sessionID -> kind -> estado
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(catalogUC *CatalogUseCase, favoritesUC *FavoritesUseCase, submitter ports.RequestSubmitter, log *logger.Logger) *RequestUseCase {
	return &RequestUseCase{
		catalogUC:   catalogUC,
		favoritesUC: favoritesUC,
		submitter:   submitter,
		log:         log,
		open:        make(map[string]map[string]*workflowState),
	}
}

// ── Apertura ──────────────────────────────────────────────────────────────────

// OpenPrice abre una solicitud de precio sobre un ítem del catálogo.
func (uc *RequestUseCase) OpenPrice(sessionID, itemID string) (*dto.WorkflowResponse, error) {
	return uc.openForItem(sessionID, KindPrice, itemID)
}

// OpenEdit abre una solicitud de edición sobre un ítem del catálogo.
func (uc *RequestUseCase) OpenEdit(sessionID, itemID string) (*dto.WorkflowResponse, error) {
	return uc.openForItem(sessionID, KindEdit, itemID)
}

func (uc *RequestUseCase) openForItem(sessionID, kind, itemID string) (*dto.WorkflowResponse, error) {
	item, err := uc.catalogUC.Find(itemID)
	if err != nil {
		return nil, err
	}
	st := &workflowState{kind: kind, status: StatusOpen, item: item}
	uc.put(sessionID, st)

	itemResp := dto.ToCatalogItemResponse(item, uc.favoritesUC.Contains(sessionID, item.ID()))
	return &dto.WorkflowResponse{Kind: kind, Status: StatusOpen, Item: &itemResp}, nil
}

// OpenList abre la solicitud de guardar lista congelando los favoritos de la
// sesión con cantidad 1 por fila. Requiere al menos un favorito.
func (uc *RequestUseCase) OpenList(sessionID string) (*dto.WorkflowResponse, error) {
	favs := uc.favoritesUC.ForSession(sessionID)
	var lines []listLine
	for _, item := range uc.catalogUC.Snapshot() {
		if favs.Contains(item.ID()) {
			lines = append(lines, listLine{item: item, quantity: 1})
		}
	}
	if len(lines) == 0 {
		return nil, domain.ErrNoFavorites
	}
	st := &workflowState{kind: KindList, status: StatusOpen, lines: lines}
	uc.put(sessionID, st)

	return &dto.WorkflowResponse{Kind: KindList, Status: StatusOpen, Lines: toLineResponses(lines)}, nil
}

// Cancel cierra y descarta la solicitud abierta del tipo dado.
func (uc *RequestUseCase) Cancel(sessionID, kind string) (*dto.WorkflowResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	byKind := uc.open[sessionID]
	if byKind == nil || byKind[kind] == nil {
		return nil, domain.ErrWorkflowNotOpen
	}
	delete(byKind, kind)
	return &dto.WorkflowResponse{Kind: kind, Status: StatusClosed}, nil
}

// ── Envío ─────────────────────────────────────────────────────────────────────

// SubmitPrice valida y envía la solicitud de precio abierta.
func (uc *RequestUseCase) SubmitPrice(ctx context.Context, sessionID string, in dto.PriceRequestForm) (*dto.SubmitResponse, error) {
	st, err := uc.take(sessionID, KindPrice)
	if err != nil {
		return nil, err
	}

	restaurantName := strings.TrimSpace(in.RestaurantName)
	contactPhone := strings.TrimSpace(in.ContactPhone)
	contactEmail := strings.TrimSpace(in.ContactEmail)
	if restaurantName == "" {
		return nil, uc.fail(sessionID, st, domain.NewValidationError("el nombre del restaurante es requerido"))
	}
	if contactPhone == "" && contactEmail == "" {
		return nil, uc.fail(sessionID, st, domain.NewValidationError("se requiere teléfono o email de contacto"))
	}

	payload := ports.PriceRequestPayload{
		Action:         "priceRequest",
		RequestID:      uuid.New().String(),
		ItemID:         st.item.ID(),
		SKU:            st.item.SKU,
		ProductName:    st.item.ProductName,
		RestaurantName: restaurantName,
		ContactName:    strings.TrimSpace(in.ContactName),
		ContactPhone:   contactPhone,
		ContactEmail:   contactEmail,
		Notes:          strings.TrimSpace(in.Notes),
	}
	if err := uc.send(ctx, sessionID, st, payload); err != nil {
		return nil, err
	}
	return &dto.SubmitResponse{
		Status:    StatusClosed,
		RequestID: payload.RequestID,
		Message:   "Solicitud de precio enviada. Te contactaremos pronto.",
	}, nil
}

// SubmitList valida y envía la lista abierta. Las cantidades del formulario se
// aplican sobre las filas congeladas al abrir; una fila sin cantidad queda en 1.
func (uc *RequestUseCase) SubmitList(ctx context.Context, sessionID string, in dto.SaveListForm) (*dto.SubmitResponse, error) {
	st, err := uc.take(sessionID, KindList)
	if err != nil {
		return nil, err
	}

	listName := strings.TrimSpace(in.ListName)
	restaurantName := strings.TrimSpace(in.RestaurantName)
	contactPhone := strings.TrimSpace(in.ContactPhone)
	contactEmail := strings.TrimSpace(in.ContactEmail)
	if listName == "" {
		return nil, uc.fail(sessionID, st, domain.NewValidationError("el nombre de la lista es requerido"))
	}
	if restaurantName == "" {
		return nil, uc.fail(sessionID, st, domain.NewValidationError("el nombre del restaurante es requerido"))
	}
	if contactPhone == "" && contactEmail == "" {
		return nil, uc.fail(sessionID, st, domain.NewValidationError("se requiere teléfono o email de contacto"))
	}
	if len(st.lines) == 0 {
		return nil, uc.fail(sessionID, st, domain.NewValidationError("la lista no tiene ítems"))
	}

	// Cantidades del formulario indexadas por id; lo no numérico o <= 0 vale 1.
	quantities := make(map[string]int, len(in.Items))
	for _, row := range in.Items {
		quantities[row.ItemID] = row.Quantity.Coerce()
	}
	items := make([]ports.SaveListPayloadItem, 0, len(st.lines))
	for i := range st.lines {
		line := &st.lines[i]
		if q, ok := quantities[line.item.ID()]; ok {
			line.quantity = q
		}
		items = append(items, ports.SaveListPayloadItem{
			ItemID:      line.item.ID(),
			SKU:         line.item.SKU,
			ProductName: line.item.ProductName,
			Quantity:    line.quantity,
		})
	}

	payload := ports.SaveListPayload{
		Action:         "saveList",
		RequestID:      uuid.New().String(),
		ListName:       listName,
		RestaurantName: restaurantName,
		ContactName:    strings.TrimSpace(in.ContactName),
		ContactPhone:   contactPhone,
		ContactEmail:   contactEmail,
		Items:          items,
	}
	if err := uc.send(ctx, sessionID, st, payload); err != nil {
		return nil, err
	}
	return &dto.SubmitResponse{
		Status:    StatusClosed,
		RequestID: payload.RequestID,
		Message:   "Lista guardada y enviada para revisión.",
	}, nil
}

// SubmitEdit envía la solicitud de edición abierta. El motivo puede ir vacío;
// el único dato obligatorio es el ítem objetivo, congelado al abrir.
func (uc *RequestUseCase) SubmitEdit(ctx context.Context, sessionID string, in dto.EditRequestForm) (*dto.SubmitResponse, error) {
	st, err := uc.take(sessionID, KindEdit)
	if err != nil {
		return nil, err
	}

	payload := ports.EditRequestPayload{
		Action:      "editRequest",
		RequestID:   uuid.New().String(),
		ItemID:      st.item.ID(),
		SKU:         st.item.SKU,
		ProductName: st.item.ProductName,
		Reason:      strings.TrimSpace(in.Reason),
	}
	if err := uc.send(ctx, sessionID, st, payload); err != nil {
		return nil, err
	}
	return &dto.SubmitResponse{
		Status:    StatusClosed,
		RequestID: payload.RequestID,
		Message:   "Solicitud de edición enviada.",
	}, nil
}

// ── Transiciones internas ─────────────────────────────────────────────────────

// put registra (o reemplaza) la solicitud abierta del tipo en la sesión.
func (uc *RequestUseCase) put(sessionID string, st *workflowState) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	byKind := uc.open[sessionID]
	if byKind == nil {
		byKind = make(map[string]*workflowState)
		uc.open[sessionID] = byKind
	}
	byKind[st.kind] = st
}

// take pasa la solicitud abierta a validating. ErrWorkflowNotOpen si no existe
// o si otro envío de la misma sesión ya la tiene en curso.
func (uc *RequestUseCase) take(sessionID, kind string) (*workflowState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	byKind := uc.open[sessionID]
	if byKind == nil || byKind[kind] == nil {
		return nil, domain.ErrWorkflowNotOpen
	}
	st := byKind[kind]
	if st.status != StatusOpen {
		return nil, domain.ErrWorkflowNotOpen
	}
	st.status = StatusValidating
	return st, nil
}

// fail devuelve la solicitud a open conservando sus datos y propaga el error.
func (uc *RequestUseCase) fail(sessionID string, st *workflowState, err error) error {
	uc.mu.Lock()
	st.status = StatusOpen
	uc.mu.Unlock()
	return err
}

// send hace el envío fire-and-forget y cierra la solicitud si el transporte
// completó. El mutex no se sostiene durante la llamada de red.
func (uc *RequestUseCase) send(ctx context.Context, sessionID string, st *workflowState, payload any) error {
	uc.mu.Lock()
	st.status = StatusSubmitting
	uc.mu.Unlock()

	if err := uc.submitter.Submit(ctx, payload); err != nil {
		uc.log.Warn().Err(err).Str("kind", st.kind).Msg("envío de solicitud fallido, queda abierta para reintento")
		return uc.fail(sessionID, st, err)
	}

	uc.mu.Lock()
	st.status = StatusClosed
	if byKind := uc.open[sessionID]; byKind != nil {
		delete(byKind, st.kind)
	}
	uc.mu.Unlock()
	uc.log.Info().Str("kind", st.kind).Msg("solicitud enviada")
	return nil
}

// Status devuelve el estado observable de la solicitud del tipo dado.
func (uc *RequestUseCase) Status(sessionID, kind string) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	byKind := uc.open[sessionID]
	if byKind == nil || byKind[kind] == nil {
		return StatusClosed
	}
	return byKind[kind].status
}

func toLineResponses(lines []listLine) []dto.ListLineResponse {
	out := make([]dto.ListLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.ListLineResponse{
			ItemID:      l.item.ID(),
			SKU:         l.item.SKU,
			ProductName: l.item.ProductName,
			Quantity:    l.quantity,
		})
	}
	return out
}
